// Package storage is the seam to the blob store. Posts only carry the
// returned URL; nothing else in the system knows about MinIO.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	Client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
)

func Init(ep, accessKey, secretKey, bkt string, ssl bool) error {
	client, err := minio.New(ep, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: ssl,
	})
	if err != nil {
		return err
	}
	Client = client
	bucket = bkt
	endpoint = ep
	useSSL = ssl
	return nil
}

// UploadImage stores the object under a fresh UUID name and returns the
// public URL clients pass back as a post's image field.
func UploadImage(ctx context.Context, r io.Reader, size int64, contentType, ext string) (string, error) {
	objectName := uuid.New().String() + ext
	_, err := Client.PutObject(ctx, bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, endpoint, bucket, objectName), nil
}
