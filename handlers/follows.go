package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yatube/database"
	"yatube/middleware"
	"yatube/models"
	"yatube/permissions"
)

type followResponse struct {
	ID        uint   `json:"id"`
	User      string `json:"user"`
	Following string `json:"following"`
}

func newFollowResponse(f models.Follow) followResponse {
	return followResponse{
		ID:        f.ID,
		User:      f.User.Username,
		Following: f.Following.Username,
	}
}

type createFollowRequest struct {
	Following string `json:"following" binding:"required"`
}

// ListFollows returns only the caller's own edges; follow data is never
// visible across owners.
func ListFollows(c *gin.Context) {
	caller := middleware.CurrentCaller(c)

	q := database.DB.Model(&models.Follow{}).
		Preload("User").Preload("Following").
		Where("follows.user_id = ?", caller.ID)

	if search := c.Query("search"); search != "" {
		q = q.Joins("JOIN users ON users.id = follows.following_id").
			Where("users.username LIKE ?", "%"+search+"%")
	}

	var follows []models.Follow
	if err := q.Order("follows.id DESC").Find(&follows).Error; err != nil {
		serverError(c)
		return
	}

	writeFollowList(c, follows)
}

func CreateFollow(c *gin.Context) {
	var req createFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller := middleware.CurrentCaller(c)

	var target models.User
	err := database.DB.Where("username = ?", req.Following).First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user does not exist"})
		} else {
			serverError(c)
		}
		return
	}

	if err := permissions.ValidateFollow(caller.ID, target.ID); err != nil {
		abortPermission(c, err)
		return
	}

	// The unique index on (user_id, following_id) is the duplicate check;
	// losing a race surfaces here as a duplicated key, never as two edges.
	follow := models.Follow{UserID: caller.ID, FollowingID: target.ID}
	if err := database.DB.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": permissions.ErrAlreadyFollowing.Error()})
			return
		}
		serverError(c)
		return
	}

	if err := database.DB.Preload("User").Preload("Following").First(&follow, follow.ID).Error; err != nil {
		serverError(c)
		return
	}
	c.JSON(http.StatusCreated, newFollowResponse(follow))
}

// DeleteFollow reports a foreign edge and a missing edge identically:
// follow lists are caller-scoped, so a 403 would leak that the id exists.
func DeleteFollow(c *gin.Context) {
	caller := middleware.CurrentCaller(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "follow not found"})
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, caller.ID).Delete(&models.Follow{})
	if res.Error != nil {
		serverError(c)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "follow not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFollowers is the reverse view: edges pointing at the caller.
func ListFollowers(c *gin.Context) {
	caller := middleware.CurrentCaller(c)

	var follows []models.Follow
	err := database.DB.Preload("User").Preload("Following").
		Where("following_id = ?", caller.ID).
		Order("id DESC").
		Find(&follows).Error
	if err != nil {
		serverError(c)
		return
	}

	writeFollowList(c, follows)
}

// ListFollowing mirrors GET /follow without the search filter.
func ListFollowing(c *gin.Context) {
	caller := middleware.CurrentCaller(c)

	var follows []models.Follow
	err := database.DB.Preload("User").Preload("Following").
		Where("user_id = ?", caller.ID).
		Order("id DESC").
		Find(&follows).Error
	if err != nil {
		serverError(c)
		return
	}

	writeFollowList(c, follows)
}

func writeFollowList(c *gin.Context, follows []models.Follow) {
	out := make([]followResponse, 0, len(follows))
	for _, f := range follows {
		out = append(out, newFollowResponse(f))
	}
	c.JSON(http.StatusOK, out)
}
