package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"yatube/handlers"
	"yatube/middleware"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := router.Group("/api")

	// Identity endpoints, rate limited against brute force.
	authLimit := middleware.RateLimit(10, time.Minute)
	api.POST("/signup", authLimit, handlers.Signup)
	api.POST("/login", authLimit, handlers.Login)

	// Reads are open to anonymous callers; follow data is not.
	api.GET("/posts", handlers.ListPosts)
	api.GET("/posts/:id", handlers.GetPost)
	api.GET("/posts/:id/comments", handlers.ListComments)
	api.GET("/posts/:id/comments/:comment_id", handlers.GetComment)
	api.GET("/groups", handlers.ListGroups)
	api.GET("/groups/:slug", handlers.GetGroup)

	auth := api.Group("")
	auth.Use(middleware.Auth())
	{
		auth.GET("/me", handlers.GetMe)
		auth.DELETE("/me", handlers.DeleteMe)

		auth.POST("/posts", handlers.CreatePost)
		auth.PATCH("/posts/:id", handlers.UpdatePost)
		auth.DELETE("/posts/:id", handlers.DeletePost)

		auth.POST("/posts/:id/comments", handlers.CreateComment)
		auth.PATCH("/posts/:id/comments/:comment_id", handlers.UpdateComment)
		auth.DELETE("/posts/:id/comments/:comment_id", handlers.DeleteComment)

		auth.POST("/groups", handlers.CreateGroup)

		auth.GET("/follow", handlers.ListFollows)
		auth.POST("/follow", handlers.CreateFollow)
		auth.DELETE("/follow/:id", handlers.DeleteFollow)
		auth.GET("/follow/followers", handlers.ListFollowers)
		auth.GET("/follow/following", handlers.ListFollowing)

		auth.POST("/upload", handlers.UploadImage)
	}

	return router
}
