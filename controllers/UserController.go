package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/repositories"
	"inkwell/utils"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// GetUserByID serves the public profile. A missing document is a 404 here,
// but the repository itself reports absence as a nil user so callers that
// tolerate legacy identities can.
func (uc *UserController) GetUserByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := uc.users.GetByID(ctx, c.Param("user_id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
