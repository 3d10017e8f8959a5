package routes

import (
	"github.com/gin-gonic/gin"

	"inkwell/controllers"
)

func UserRouter(incomingRoutes *gin.Engine, users *controllers.UserController, posts *controllers.PostController) {
	incomingRoutes.GET("/users/:user_id", users.GetUserByID)
	incomingRoutes.GET("/users/:user_id/posts", posts.GetPostsByUser)
}
