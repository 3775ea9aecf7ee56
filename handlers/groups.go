package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yatube/cache"
	"yatube/database"
	"yatube/middleware"
	"yatube/models"
)

const (
	groupListKey  = "groups:all"
	groupSlugKey  = "groups:slug:"
	groupCacheTTL = 5 * time.Minute
)

type createGroupRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Slug        string `json:"slug" binding:"required,max=200"`
	Description string `json:"description"`
}

// Groups change rarely (staff-created, never deleted in normal flow),
// which makes them safe to serve read-through from redis.
func ListGroups(c *gin.Context) {
	var groups []models.Group
	if cache.GetJSON(c.Request.Context(), groupListKey, &groups) {
		c.JSON(http.StatusOK, groups)
		return
	}

	if err := database.DB.Order("id").Find(&groups).Error; err != nil {
		serverError(c)
		return
	}
	cache.SetJSON(c.Request.Context(), groupListKey, groups, groupCacheTTL)

	c.JSON(http.StatusOK, groups)
}

func GetGroup(c *gin.Context) {
	slug := c.Param("slug")

	var group models.Group
	if cache.GetJSON(c.Request.Context(), groupSlugKey+slug, &group) {
		c.JSON(http.StatusOK, group)
		return
	}

	err := database.DB.Where("slug = ?", slug).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		} else {
			serverError(c)
		}
		return
	}
	cache.SetJSON(c.Request.Context(), groupSlugKey+slug, group, groupCacheTTL)

	c.JSON(http.StatusOK, group)
}

// CreateGroup is the one write on groups, restricted to staff callers.
func CreateGroup(c *gin.Context) {
	caller := middleware.CurrentCaller(c)
	if !caller.IsStaff {
		c.JSON(http.StatusForbidden, gin.H{"error": "only staff may create groups"})
		return
	}

	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := models.Group{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := database.DB.Create(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug already in use"})
			return
		}
		serverError(c)
		return
	}

	cache.Delete(c.Request.Context(), groupListKey, groupSlugKey+group.Slug)

	c.JSON(http.StatusCreated, group)
}
