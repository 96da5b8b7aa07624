package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPresignedURL(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.registerUser(t, "alice", "Alice A")

	w := env.do(t, http.MethodPost, "/api/upload/presigned-url", aliceToken, gin.H{
		"fileName":    "beach.jpg",
		"contentType": "image/jpeg",
		"fileSize":    1024 * 1024,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			UploadURL string `json:"uploadUrl"`
			FileURL   string `json:"fileUrl"`
			Key       string `json:"key"`
			ExpiresIn int    `json:"expiresIn"`
		} `json:"data"`
	}
	decodeBody(t, w, &resp)

	assert.True(t, strings.HasPrefix(resp.Data.Key, "uploads/photo/"))
	assert.Contains(t, resp.Data.Key, ".jpg")
	assert.NotEmpty(t, resp.Data.UploadURL)
	assert.Equal(t, "https://cdn.example.com/"+resp.Data.Key, resp.Data.FileURL)
	assert.Equal(t, 3600, resp.Data.ExpiresIn)
}

func TestGetPresignedURLValidation(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.registerUser(t, "alice", "Alice A")

	w := env.do(t, http.MethodPost, "/api/upload/presigned-url", "", gin.H{
		"fileName":    "beach.jpg",
		"contentType": "image/jpeg",
		"fileSize":    1024,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/upload/presigned-url", aliceToken, gin.H{
		"fileName":    "doc.pdf",
		"contentType": "application/pdf",
		"fileSize":    1024,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/upload/presigned-url", aliceToken, gin.H{
		"fileName":    "huge.jpg",
		"contentType": "image/jpeg",
		"fileSize":    11 * 1024 * 1024,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvatarUploadURL(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.registerUser(t, "alice", "Alice A")

	w := env.do(t, http.MethodPost, "/api/upload/avatar", aliceToken, gin.H{
		"fileName":    "face.png",
		"contentType": "image/png",
		"fileSize":    1024 * 1024,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Key string `json:"key"`
		} `json:"data"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, strings.HasPrefix(resp.Data.Key, "uploads/avatar/"))

	// Avatars carry a tighter size limit.
	w = env.do(t, http.MethodPost, "/api/upload/avatar", aliceToken, gin.H{
		"fileName":    "face.png",
		"contentType": "image/png",
		"fileSize":    6 * 1024 * 1024,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
