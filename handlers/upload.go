package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"yatube/storage"
)

// UploadImage streams a multipart image to the blob store and returns
// the URL a client passes back as a post's image field.
func UploadImage(c *gin.Context) {
	if storage.Client == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image storage is not configured"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer src.Close()

	url, err := storage.UploadImage(
		c.Request.Context(),
		src,
		file.Size,
		file.Header.Get("Content-Type"),
		filepath.Ext(file.Filename),
	)
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
