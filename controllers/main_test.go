package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/photoloop/api-go/config"
	"github.com/photoloop/api-go/routes"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateModels(db))

	// Presigning is a local signing operation, but the static credentials
	// provider rejects empty keys, so the test config carries dummy ones.
	storage := &config.StorageConfig{
		AccountID:       "test-account",
		AccessKeyID:     "test-access-key",
		SecretAccessKey: "test-secret-key",
		BucketName:      "test-bucket",
		PublicURL:       "https://cdn.example.com",
		Region:          "auto",
	}

	router := gin.New()
	routes.SetupRoutes(router, db, storage)

	return &testEnv{db: db, router: router}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerUser signs up and logs in a user, returning its id and access token.
func (e *testEnv) registerUser(t *testing.T, username, fullName string) (uint, string) {
	t.Helper()

	email := username + "@example.com"

	w := e.do(t, http.MethodPost, "/api/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "password123",
		"fullName": fullName,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(t, http.MethodPost, "/api/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, w, &resp)
	require.NotZero(t, resp.User.ID)
	require.NotEmpty(t, resp.AccessToken)

	return resp.User.ID, resp.AccessToken
}

// createPost makes a post for the given token and returns the post id.
func (e *testEnv) createPost(t *testing.T, token, caption string) uint {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/posts", token, gin.H{
		"imageKey": fmt.Sprintf("uploads/photo/1/%s.jpg", caption),
		"caption":  caption,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Post struct {
			ID uint `json:"id"`
		} `json:"post"`
	}
	decodeBody(t, w, &resp)
	require.NotZero(t, resp.Post.ID)

	return resp.Post.ID
}
