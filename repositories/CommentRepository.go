package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"inkwell/database"
	"inkwell/models"
)

type CommentRepository struct {
	comments *mongo.Collection
	posts    *PostRepository
}

func NewCommentRepository(db *mongo.Database, posts *PostRepository) *CommentRepository {
	return &CommentRepository{
		comments: database.OpenCollection(db, "comments"),
		posts:    posts,
	}
}

// ListByPost filters on the post id only and sorts locally, newest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	cursor, err := r.comments.Find(ctx, bson.M{"postId": postID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	sortCommentsNewestFirst(comments)
	return comments, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return &comment, nil
}

// Add inserts the comment, then bumps the parent post's advisory counter.
// The bump is best-effort: if it fails the comment still stands and the
// counter is allowed to drift.
func (r *CommentRepository) Add(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now().UTC()

	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	if err := r.posts.IncrementCommentCount(ctx, comment.PostID, 1); err != nil {
		log.Printf("failed to update comment count for post %s: %v", comment.PostID, err)
	}

	return comment, nil
}

// Delete removes the comment, then decrements the parent post's counter on
// the same advisory basis.
func (r *CommentRepository) Delete(ctx context.Context, commentID, postID string) error {
	result, err := r.comments.DeleteOne(ctx, bson.M{"_id": commentID})
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}

	if err := r.posts.IncrementCommentCount(ctx, postID, -1); err != nil {
		log.Printf("failed to update comment count for post %s: %v", postID, err)
	}
	return nil
}

// sortCommentsNewestFirst orders comments by creation time descending. A
// zero timestamp sorts as "now" so a just-written comment surfaces on top.
func sortCommentsNewestFirst(comments []models.Comment) {
	now := time.Now()
	sort.SliceStable(comments, func(i, j int) bool {
		return creationTime(comments[i].CreatedAt, now).After(creationTime(comments[j].CreatedAt, now))
	})
}
