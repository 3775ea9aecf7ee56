package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatube/permissions"
)

// abortPermission maps the domain error taxonomy onto response codes:
// a caller must be able to tell "log in" (401) apart from "not yours" (403).
func abortPermission(c *gin.Context, err error) {
	switch {
	case errors.Is(err, permissions.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, permissions.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func serverError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
