package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yatube/cache"
)

// RateLimit is a fixed-window per-IP limiter backed by redis. It fails
// open: no redis, or a redis error, and the request goes through.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache.RDB == nil {
			c.Next()
			return
		}

		key := "ratelimit:" + c.ClientIP() + ":" + c.FullPath()
		n, err := cache.RDB.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if n == 1 {
			cache.RDB.Expire(c.Request.Context(), key, window)
		}
		if n > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
