package handlers

import (
	"encoding/json"
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

type postResponse struct {
	ID      uint      `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	Group   *string   `json:"group"`
	Image   string    `json:"image,omitempty"`
}

func newPostResponse(p models.Post) postResponse {
	var slug *string
	if p.Group != nil {
		slug = &p.Group.Slug
	}
	return postResponse{
		ID:      p.ID,
		Author:  p.Author.Username,
		Text:    p.Text,
		PubDate: p.PubDate,
		Group:   slug,
		Image:   p.Image,
	}
}

type createPostRequest struct {
	Text  string  `json:"text" binding:"required"`
	Group *string `json:"group"`
	Image string  `json:"image"`
}

type updatePostRequest struct {
	Text *string `json:"text"`
	// RawMessage keeps an absent field and an explicit null apart:
	// null detaches the post from its group.
	Group json.RawMessage `json:"group"`
	Image *string         `json:"image"`
}

// ListPosts is open to anonymous callers. Unknown author or group
// filter values simply match nothing.
func ListPosts(c *gin.Context) {
	q := database.DB.Model(&models.Post{}).Preload("Author").Preload("Group")

	if author := c.Query("author"); author != "" {
		q = q.Joins("JOIN users ON users.id = posts.author_id").
			Where("users.username = ?", author)
	}
	if slug := c.Query("group"); slug != "" {
		q = q.Joins("JOIN `groups` ON `groups`.id = posts.group_id").
			Where("`groups`.slug = ?", slug)
	}

	// Newest first, id breaks publication-time ties.
	q = q.Order("posts.pub_date DESC").Order("posts.id DESC")

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		q = q.Limit(limit)
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		q = q.Offset(offset)
	}

	var posts []models.Post
	if err := q.Find(&posts).Error; err != nil {
		serverError(c)
		return
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, newPostResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller := middleware.CurrentCaller(c)

	post := models.Post{
		Text:     req.Text,
		Image:    req.Image,
		AuthorID: caller.ID, // always the caller; a client-supplied author is ignored
	}
	if req.Group != nil {
		group, ok := groupBySlug(c, *req.Group)
		if !ok {
			return
		}
		post.GroupID = &group.ID
	}

	if err := database.DB.Create(&post).Error; err != nil {
		serverError(c)
		return
	}
	if err := database.DB.Preload("Author").Preload("Group").First(&post, post.ID).Error; err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, newPostResponse(post))
}

func GetPost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newPostResponse(*post))
}

func UpdatePost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	caller := middleware.CurrentCaller(c)
	if err := permissions.CanWrite(caller, post.AuthorID); err != nil {
		abortPermission(c, err)
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if len(req.Group) > 0 {
		if string(req.Group) == "null" {
			updates["group_id"] = nil
		} else {
			var slug string
			if err := json.Unmarshal(req.Group, &slug); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "group must be a slug or null"})
				return
			}
			group, ok := groupBySlug(c, slug)
			if !ok {
				return
			}
			updates["group_id"] = group.ID
		}
	}

	if len(updates) > 0 {
		if err := database.DB.Model(post).Updates(updates).Error; err != nil {
			serverError(c)
			return
		}
	}
	if err := database.DB.Preload("Author").Preload("Group").First(post, post.ID).Error; err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, newPostResponse(*post))
}

func DeletePost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}

	caller := middleware.CurrentCaller(c)
	if err := permissions.CanWrite(caller, post.AuthorID); err != nil {
		abortPermission(c, err)
		return
	}

	if err := database.DB.Delete(post).Error; err != nil {
		serverError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// findPost resolves the :id route param; a miss writes the 404 itself.
func findPost(c *gin.Context) (*models.Post, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return nil, false
	}

	var post models.Post
	err = database.DB.Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		} else {
			serverError(c)
		}
		return nil, false
	}
	return &post, true
}

// groupBySlug resolves a group reference from a request body; an unknown
// slug is the caller's mistake, not a missing resource.
func groupBySlug(c *gin.Context, slug string) (*models.Group, bool) {
	var group models.Group
	err := database.DB.Where("slug = ?", slug).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "group does not exist"})
		} else {
			serverError(c)
		}
		return nil, false
	}
	return &group, true
}
