package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/database"
	"yatube/models"
)

func TestSignupLoginFlow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/signup",
		gin.H{"username": "alice", "password": "wonderland"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	signup := decodeJSON[map[string]any](t, w)
	require.NotEmpty(t, signup["token"])

	// Username is taken now.
	w = doJSON(t, r, http.MethodPost, "/api/signup",
		gin.H{"username": "alice", "password": "otherpass"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login",
		gin.H{"username": "alice", "password": "wrong"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login",
		gin.H{"username": "alice", "password": "wonderland"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	login := decodeJSON[map[string]any](t, w)
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	w = doJSON(t, r, http.MethodGet, "/api/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeJSON[map[string]any](t, w)
	assert.Equal(t, "alice", me["username"])
}

func TestMeRequiresAuth(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/me", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteMeCascades(t *testing.T) {
	r := setupRouter(t)
	alice := seedUser(t, "alice", false)
	bob := seedUser(t, "bob", false)
	aliceToken := tokenFor(t, alice)
	bobToken := tokenFor(t, bob)

	alicePost := createPost(t, r, aliceToken, "alice post")
	bobPost := createPost(t, r, bobToken, "bob post")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", bobPost.ID),
		gin.H{"text": "alice comments"}, aliceToken)
	require.Equal(t, http.StatusCreated, w.Code)

	follow(t, r, aliceToken, "bob")
	follow(t, r, bobToken, "alice")

	w = doJSON(t, r, http.MethodDelete, "/api/me", nil, aliceToken)
	require.Equal(t, http.StatusNoContent, w.Code)

	var posts, comments, follows int64
	require.NoError(t, database.DB.Model(&models.Post{}).Where("author_id = ?", alice.ID).Count(&posts).Error)
	require.NoError(t, database.DB.Model(&models.Comment{}).Where("author_id = ?", alice.ID).Count(&comments).Error)
	require.NoError(t, database.DB.Model(&models.Follow{}).
		Where("user_id = ? OR following_id = ?", alice.ID, alice.ID).Count(&follows).Error)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
	assert.Zero(t, follows)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", alicePost.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", bobPost.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
