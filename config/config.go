package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	GinMode   string
	DSN       string
	JWTSecret string

	RedisAddr     string
	RedisPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// Load reads .env if present, then the environment. Only JWT_SECRET has
// no default; main refuses to start without it.
func Load() Config {
	godotenv.Load()

	return Config{
		Port:      getenv("PORT", "8080"),
		GinMode:   getenv("GIN_MODE", "debug"),
		DSN:       getenv("DATABASE_DSN", "root:123456@tcp(127.0.0.1:3306)/yatube?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getenv("MINIO_BUCKET", "yatube"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
