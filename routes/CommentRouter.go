package routes

import (
	"github.com/gin-gonic/gin"

	"inkwell/controllers"
	"inkwell/middlewares"
	"inkwell/services"
)

func CommentRouter(incomingRoutes *gin.Engine, comments *controllers.CommentController, identity *services.IdentityService) {
	incomingRoutes.GET("/posts/:post_id/comments", comments.GetComments)

	protected := incomingRoutes.Group("")
	protected.Use(middlewares.RequireAuth(identity))
	protected.POST("/posts/:post_id/comments", comments.AddComment)
	protected.DELETE("/comments/:comment_id", comments.DeleteComment)
}
