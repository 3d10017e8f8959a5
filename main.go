package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"inkwell/config"
	"inkwell/controllers"
	"inkwell/database"
	"inkwell/initializers"
	"inkwell/repositories"
	"inkwell/routes"
	"inkwell/services"
)

func init() {
	initializers.LoadEnvVariables()
}

func main() {
	cfg := config.Load()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.DBName)

	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db, postRepo)
	userRepo := repositories.NewUserRepository(db)

	uploader := services.NewImgBBUploader(cfg.ImgBBEndpoint, cfg.ImgBBAPIKey)
	identity := services.NewIdentityService(userRepo, uploader, cfg.JWTSecret)

	authController := controllers.NewAuthController(identity)
	postController := controllers.NewPostController(postRepo, uploader)
	commentController := controllers.NewCommentController(commentRepo, postRepo)
	userController := controllers.NewUserController(userRepo)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.AuthRouter(router, authController, identity)
	routes.PostRouter(router, postController, identity)
	routes.CommentRouter(router, commentController, identity)
	routes.UserRouter(router, userController, postController)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
