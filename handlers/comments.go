package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"yatube/database"
	"yatube/middleware"
	"yatube/models"
	"yatube/permissions"
)

type commentResponse struct {
	ID      uint      `json:"id"`
	Author  string    `json:"author"`
	Post    uint      `json:"post"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}

func newCommentResponse(cm models.Comment) commentResponse {
	return commentResponse{
		ID:      cm.ID,
		Author:  cm.Author.Username,
		Post:    cm.PostID,
		Text:    cm.Text,
		Created: cm.Created,
	}
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

type updateCommentRequest struct {
	Text *string `json:"text"`
}

func ListComments(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	var comments []models.Comment
	err := database.DB.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created DESC").Order("id DESC").
		Find(&comments).Error
	if err != nil {
		serverError(c)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, newCommentResponse(cm))
	}
	c.JSON(http.StatusOK, out)
}

func CreateComment(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller := middleware.CurrentCaller(c)
	comment := models.Comment{
		Text:     req.Text,
		PostID:   post.ID,
		AuthorID: caller.ID,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		serverError(c)
		return
	}
	if err := database.DB.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, newCommentResponse(comment))
}

func GetComment(c *gin.Context) {
	comment, ok := findComment(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newCommentResponse(*comment))
}

func UpdateComment(c *gin.Context) {
	comment, ok := findComment(c)
	if !ok {
		return
	}

	caller := middleware.CurrentCaller(c)
	if err := permissions.CanWrite(caller, comment.AuthorID); err != nil {
		abortPermission(c, err)
		return
	}

	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Text != nil {
		comment.Text = *req.Text
		if err := database.DB.Model(comment).Update("text", comment.Text).Error; err != nil {
			serverError(c)
			return
		}
	}

	c.JSON(http.StatusOK, newCommentResponse(*comment))
}

func DeleteComment(c *gin.Context) {
	comment, ok := findComment(c)
	if !ok {
		return
	}

	caller := middleware.CurrentCaller(c)
	if err := permissions.CanWrite(caller, comment.AuthorID); err != nil {
		abortPermission(c, err)
		return
	}

	if err := database.DB.Delete(comment).Error; err != nil {
		serverError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// findComment resolves a comment within its parent post. A comment id
// that exists under a different post is still a 404 here.
func findComment(c *gin.Context) (*models.Comment, bool) {
	post, ok := findPost(c)
	if !ok {
		return nil, false
	}

	id, err := strconv.Atoi(c.Param("comment_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return nil, false
	}

	var comment models.Comment
	err = database.DB.Preload("Author").
		Where("id = ? AND post_id = ?", id, post.ID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		} else {
			serverError(c)
		}
		return nil, false
	}
	return &comment, true
}
