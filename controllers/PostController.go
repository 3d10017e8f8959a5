package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"inkwell/middlewares"
	"inkwell/models"
	"inkwell/repositories"
	"inkwell/services"
	"inkwell/utils"
)

type PostController struct {
	posts    *repositories.PostRepository
	uploader services.Uploader
}

func NewPostController(posts *repositories.PostRepository, uploader services.Uploader) *PostController {
	return &PostController{posts: posts, uploader: uploader}
}

func (pc *PostController) GetAllPosts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	posts, err := pc.posts.ListAll(ctx)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (pc *PostController) GetPostsByUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	posts, err := pc.posts.ListByAuthor(ctx, c.Param("user_id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (pc *PostController) GetPostByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	post, err := pc.posts.GetByID(ctx, c.Param("post_id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreatePost accepts a multipart form with title, description and either an
// image file or an already-hosted imageUrl. Validation runs before any
// upload or store call; a new post without an image is rejected outright.
func (pc *PostController) CreatePost(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	title := c.PostForm("title")
	description := c.PostForm("description")
	imageURL := c.PostForm("imageUrl")

	if title == "" || description == "" {
		utils.SendValidationError(c, "title and description are required")
		return
	}

	fileHeader, fileErr := c.FormFile("image")
	if fileErr != nil && imageURL == "" {
		utils.SendValidationError(c, "an image is required for new posts")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if fileErr == nil {
		src, err := fileHeader.Open()
		if err != nil {
			utils.SendValidationError(c, err.Error())
			return
		}
		defer src.Close()

		imageURL, err = pc.uploader.Upload(ctx, fileHeader.Filename, src)
		if err != nil {
			utils.SendError(c, err)
			return
		}
	}

	post := &models.Post{
		Title:           title,
		Description:     description,
		ImageURL:        imageURL,
		UserID:          user.ID,
		UserDisplayName: user.Name,
		UserPhotoURL:    user.PhotoURL,
	}

	if _, err := pc.posts.Create(ctx, post); err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdatePost applies a partial edit to the caller's own post. Fields left
// out of the form are not touched.
func (pc *PostController) UpdatePost(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	postID := c.Param("post_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	post, err := pc.posts.GetByID(ctx, postID)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	if post.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author can edit this post"})
		return
	}

	fields := bson.M{}
	if title := c.PostForm("title"); title != "" {
		fields["title"] = title
	}
	if description := c.PostForm("description"); description != "" {
		fields["description"] = description
	}
	if imageURL := c.PostForm("imageUrl"); imageURL != "" {
		fields["imageUrl"] = imageURL
	}

	if fileHeader, fileErr := c.FormFile("image"); fileErr == nil {
		src, err := fileHeader.Open()
		if err != nil {
			utils.SendValidationError(c, err.Error())
			return
		}
		defer src.Close()

		uploaded, err := pc.uploader.Upload(ctx, fileHeader.Filename, src)
		if err != nil {
			utils.SendError(c, err)
			return
		}
		fields["imageUrl"] = uploaded
	}

	if len(fields) == 0 {
		utils.SendValidationError(c, "nothing to update")
		return
	}

	if err := pc.posts.Update(ctx, postID, fields); err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully"})
}

// DeletePost removes the caller's own post. Comments on it are left in
// place; the store does not cascade.
func (pc *PostController) DeletePost(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	postID := c.Param("post_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	post, err := pc.posts.GetByID(ctx, postID)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	if post.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete this post"})
		return
	}

	if err := pc.posts.Delete(ctx, postID); err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (pc *PostController) ToggleLike(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	liked, err := pc.posts.ToggleLike(ctx, c.Param("post_id"), user.ID)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
