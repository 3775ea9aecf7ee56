package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"yatube/cache"
	"yatube/config"
	"yatube/database"
	"yatube/middleware"
	"yatube/routes"
	"yatube/storage"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	middleware.JWTKey = []byte(cfg.JWTSecret)

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg.DSN); err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	if err := database.Migrate(database.DB); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}
	log.Println("database connected")

	if cfg.RedisAddr != "" {
		cache.Init(cfg.RedisAddr, cfg.RedisPassword)
		log.Println("redis connected:", cfg.RedisAddr)
	} else {
		log.Println("REDIS_ADDR not set, caching and rate limiting disabled")
	}

	if cfg.MinioEndpoint != "" {
		if err := storage.Init(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL); err != nil {
			log.Fatal("failed to connect to minio: ", err)
		}
		log.Println("minio connected:", cfg.MinioEndpoint)
	} else {
		log.Println("MINIO_ENDPOINT not set, image upload disabled")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      routes.SetupRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("forced shutdown:", err)
	}
	log.Println("server stopped")
}
