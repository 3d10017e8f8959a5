package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestIdentity() *services.IdentityService {
	// nil repository and uploader: only paths that fail before touching the
	// store are exercised here.
	return services.NewIdentityService(nil, nil, "test-secret")
}

func signupRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/signup", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestSignup_MissingEmail(t *testing.T) {
	auth := NewAuthController(newTestIdentity())
	router := gin.New()
	router.POST("/signup", auth.Signup)

	req := signupRequest(t, map[string]string{
		"name":     "Ada",
		"password": "password123",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_WeakPassword(t *testing.T) {
	auth := NewAuthController(newTestIdentity())
	router := gin.New()
	router.POST("/signup", auth.Signup)

	req := signupRequest(t, map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "123",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "password")
}

func TestLogin_MalformedBody(t *testing.T) {
	auth := NewAuthController(newTestIdentity())
	router := gin.New()
	router.POST("/login", auth.Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_MissingPassword(t *testing.T) {
	auth := NewAuthController(newTestIdentity())
	router := gin.New()
	router.POST("/login", auth.Login)

	body, _ := json.Marshal(map[string]string{"email": "ada@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	auth := NewAuthController(newTestIdentity())
	router := gin.New()
	router.POST("/logout", auth.Logout)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestUpdateProfile_WithoutIdentity(t *testing.T) {
	auth := NewAuthController(newTestIdentity())
	router := gin.New()
	// no auth middleware: the service must report the missing identity
	router.PUT("/profile", auth.UpdateProfile)

	body, _ := json.Marshal(map[string]string{"name": "Ada"})
	req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidate_WithoutIdentity(t *testing.T) {
	auth := NewAuthController(newTestIdentity())
	router := gin.New()
	router.GET("/validate", auth.Validate)

	req := httptest.NewRequest(http.MethodGet, "/validate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
