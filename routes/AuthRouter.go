package routes

import (
	"github.com/gin-gonic/gin"

	"inkwell/controllers"
	"inkwell/middlewares"
	"inkwell/services"
)

func AuthRouter(incomingRoutes *gin.Engine, auth *controllers.AuthController, identity *services.IdentityService) {
	incomingRoutes.POST("/signup", auth.Signup)
	incomingRoutes.POST("/login", auth.Login)
	incomingRoutes.POST("/logout", auth.Logout)

	protected := incomingRoutes.Group("")
	protected.Use(middlewares.RequireAuth(identity))
	protected.GET("/validate", auth.Validate)
	protected.PUT("/profile", auth.UpdateProfile)
}
