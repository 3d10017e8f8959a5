package controllers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"inkwell/middlewares"
	"inkwell/models"
	"inkwell/services"
	"inkwell/utils"
)

const (
	requestTimeout = 10 * time.Second
	cookieMaxAge   = 3600 * 24 * 30
)

var validate = validator.New()

type AuthController struct {
	identity *services.IdentityService
}

func NewAuthController(identity *services.IdentityService) *AuthController {
	return &AuthController{identity: identity}
}

type SignupForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Signup registers a new account from a multipart form. The avatar image is
// optional; when present it is uploaded to the image host before the
// account is created.
func (ac *AuthController) Signup(c *gin.Context) {
	form := SignupForm{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	if err := validate.Struct(form); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	var (
		image     io.Reader
		imageName string
	)
	if fileHeader, err := c.FormFile("image"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			utils.SendValidationError(c, err.Error())
			return
		}
		defer src.Close()
		image = src
		imageName = fileHeader.Filename
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, token, err := ac.identity.Register(ctx, form.Email, form.Password, form.Name, imageName, image)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, token, err := ac.identity.Login(ctx, req.Email, req.Password)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ac *AuthController) Logout(c *gin.Context) {
	ac.identity.Logout()
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// Validate echoes the identity attached by the auth middleware.
func (ac *AuthController) Validate(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		utils.SendError(c, models.ErrNotAuthenticated)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photoURL"`
}

// UpdateProfile changes the caller's display name and photo. Existing posts
// and comments keep the author snapshot taken when they were written.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := ac.identity.UpdateProfile(ctx, middlewares.CurrentUser(c), req.Name, req.PhotoURL); err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, cookieMaxAge, "/", "", false, true)
}
