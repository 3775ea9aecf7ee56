package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatube/database"
	"yatube/middleware"
	"yatube/models"
)

func GetMe(c *gin.Context) {
	caller := middleware.CurrentCaller(c)

	var user models.User
	if err := database.DB.First(&user, caller.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

// DeleteMe removes the account. The store's foreign-key actions take the
// caller's posts, comments and follow edges (both directions) with it.
func DeleteMe(c *gin.Context) {
	caller := middleware.CurrentCaller(c)

	if err := database.DB.Delete(&models.User{}, caller.ID).Error; err != nil {
		serverError(c)
		return
	}

	c.Status(http.StatusNoContent)
}
