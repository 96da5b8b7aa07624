package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	env := newTestEnv(t)
	aliceID, aliceToken := env.registerUser(t, "alice", "Alice A")

	w := env.do(t, http.MethodPost, "/api/posts", aliceToken, gin.H{
		"imageKey": "uploads/photo/1/sunset.jpg",
		"caption":  "golden hour #sunset #nofilter",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Post struct {
			ID        uint     `json:"id"`
			UserID    uint     `json:"userId"`
			Caption   string   `json:"caption"`
			Hashtags  []string `json:"hashtags"`
			LikeCount int      `json:"likeCount"`
			ImageURL  string   `json:"imageUrl"`
		} `json:"post"`
	}
	decodeBody(t, w, &resp)

	assert.Equal(t, aliceID, resp.Post.UserID)
	assert.Equal(t, "golden hour #sunset #nofilter", resp.Post.Caption)
	assert.Equal(t, []string{"sunset", "nofilter"}, resp.Post.Hashtags)
	assert.Equal(t, 0, resp.Post.LikeCount)
	assert.Equal(t, "https://cdn.example.com/uploads/photo/1/sunset.jpg", resp.Post.ImageURL)
}

func TestCreatePostRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/posts", "", gin.H{
		"imageKey": "uploads/photo/1/x.jpg",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePostWithoutCaption(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.registerUser(t, "alice", "Alice A")

	w := env.do(t, http.MethodPost, "/api/posts", aliceToken, gin.H{
		"imageKey": "uploads/photo/1/blank.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Post struct {
			Caption string `json:"caption"`
		} `json:"post"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "", resp.Post.Caption)
}

func TestGetUserPostsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	aliceID, aliceToken := env.registerUser(t, "alice", "Alice A")

	first := env.createPost(t, aliceToken, "first")
	second := env.createPost(t, aliceToken, "second")
	third := env.createPost(t, aliceToken, "third")

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d/posts", aliceID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Posts []struct {
			ID       uint   `json:"id"`
			ImageURL string `json:"imageUrl"`
		} `json:"posts"`
	}
	decodeBody(t, w, &resp)

	require.Len(t, resp.Posts, 3)
	assert.Equal(t, []uint{third, second, first}, []uint{resp.Posts[0].ID, resp.Posts[1].ID, resp.Posts[2].ID})
	assert.Contains(t, resp.Posts[0].ImageURL, "https://cdn.example.com/")
}

func TestGetPostDetail(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.registerUser(t, "alice", "Alice A")
	postID := env.createPost(t, aliceToken, "closeup")

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Post struct {
			ID       uint   `json:"id"`
			Caption  string `json:"caption"`
			UserName string `json:"userName"`
		} `json:"post"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, postID, resp.Post.ID)
	assert.Equal(t, "closeup", resp.Post.Caption)
	assert.Equal(t, "Alice A", resp.Post.UserName)

	w = env.do(t, http.MethodGet, "/api/posts/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostCascades(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.registerUser(t, "alice", "Alice A")
	_, bobToken := env.registerUser(t, "bob", "Bob B")

	postID := env.createPost(t, aliceToken, "doomed")

	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", postID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID), bobToken, gin.H{"content": "nice"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Post, likes and comments are all gone.
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var likeCount, commentCount int64
	env.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&likeCount)
	env.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&commentCount)
	assert.Zero(t, likeCount)
	assert.Zero(t, commentCount)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", postID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var commentsResp struct {
		Comments []struct{} `json:"comments"`
	}
	decodeBody(t, w, &commentsResp)
	assert.Empty(t, commentsResp.Comments)
}

func TestDeletePostOwnershipAndAuth(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.registerUser(t, "alice", "Alice A")
	_, bobToken := env.registerUser(t, "bob", "Bob B")

	postID := env.createPost(t, aliceToken, "mine")

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, "/api/posts/9999", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
