package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/middlewares"
	"inkwell/models"
	"inkwell/repositories"
	"inkwell/utils"
)

type CommentController struct {
	comments *repositories.CommentRepository
	posts    *repositories.PostRepository
}

func NewCommentController(comments *repositories.CommentRepository, posts *repositories.PostRepository) *CommentController {
	return &CommentController{comments: comments, posts: posts}
}

func (cc *CommentController) GetComments(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	comments, err := cc.comments.ListByPost(ctx, c.Param("post_id"))
	if err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type AddCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// AddComment writes a comment under an existing post with a snapshot of the
// caller's name and photo. The parent's comment counter is maintained
// best-effort inside the repository.
func (cc *CommentController) AddComment(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	postID := c.Param("post_id")

	var req AddCommentRequest
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

	if _, err := cc.posts.GetByID(ctx, postID); err != nil {
		utils.SendError(c, err)
		return
	}

	comment := &models.Comment{
		PostID:          postID,
		UserID:          user.ID,
		UserDisplayName: user.Name,
		UserPhotoURL:    user.PhotoURL,
		Content:         req.Content,
	}

	created, err := cc.comments.Add(ctx, comment)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": created})
}

// DeleteComment removes the caller's own comment.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	commentID := c.Param("comment_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	comment, err := cc.comments.GetByID(ctx, commentID)
	if err != nil {
		utils.SendError(c, err)
		return
	}
	if comment.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete this comment"})
		return
	}

	if err := cc.comments.Delete(ctx, commentID, comment.PostID); err != nil {
		utils.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
