package routes

import (
	"github.com/gin-gonic/gin"

	"inkwell/controllers"
	"inkwell/middlewares"
	"inkwell/services"
)

func PostRouter(incomingRoutes *gin.Engine, posts *controllers.PostController, identity *services.IdentityService) {
	incomingRoutes.GET("/posts", posts.GetAllPosts)
	incomingRoutes.GET("/posts/:post_id", posts.GetPostByID)

	protected := incomingRoutes.Group("")
	protected.Use(middlewares.RequireAuth(identity))
	protected.POST("/posts", posts.CreatePost)
	protected.PUT("/posts/:post_id", posts.UpdatePost)
	protected.DELETE("/posts/:post_id", posts.DeletePost)
	protected.POST("/posts/:post_id/like", posts.ToggleLike)
}
