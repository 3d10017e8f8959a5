package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/models"
)

// withTestUser plays the role of the auth middleware.
func withTestUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

func createPostRequest(t *testing.T, fields map[string]string, withImage bool) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/posts", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestCreatePost_MissingTitle(t *testing.T) {
	posts := NewPostController(nil, nil)
	router := gin.New()
	router.POST("/posts", withTestUser(&models.User{ID: "u1"}), posts.CreatePost)

	req := createPostRequest(t, map[string]string{"description": "body"}, false)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePost_ImageRequiredForNewPosts(t *testing.T) {
	// nil repository and uploader: the validation failure must happen before
	// any upload or store call.
	posts := NewPostController(nil, nil)
	router := gin.New()
	router.POST("/posts", withTestUser(&models.User{ID: "u1"}), posts.CreatePost)

	req := createPostRequest(t, map[string]string{
		"title":       "A",
		"description": "B",
	}, false)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "image is required")
}
