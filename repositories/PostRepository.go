package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/database"
	"inkwell/models"
)

type PostRepository struct {
	posts *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{posts: database.OpenCollection(db, "posts")}
}

// ListAll returns every post, newest first.
func (r *PostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return posts, nil
}

// ListByAuthor filters on the author id only and sorts locally, so no
// compound index on (userId, createdAt) is required.
func (r *PostRepository) ListByAuthor(ctx context.Context, userID string) ([]models.Post, error) {
	cursor, err := r.posts.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	sortPostsNewestFirst(posts)
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return &post, nil
}

// Create assigns the id and timestamps and initializes the like set and
// comment counter.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (string, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Likes = []string{}
	post.CommentsCount = 0

	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return post.ID, nil
}

// Update applies a partial $set; callers only send the fields they changed.
func (r *PostRepository) Update(ctx context.Context, id string, fields bson.M) error {
	update := bson.M{}
	for k, v := range fields {
		update[k] = v
	}
	update["updatedAt"] = time.Now().UTC()

	result, err := r.posts.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the post only. Its comments are left behind; the store does
// not enforce referential integrity.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ToggleLike flips the user's membership in the like set and reports the new
// state. The read only decides add-vs-remove; the write goes through
// $addToSet/$pull, so concurrent togglers by different users cannot corrupt
// the set. A race may report a stale boolean, never a bad set.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	post, err := r.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}

	update, liked := likeUpdate(post.Likes, userID)
	if _, err := r.posts.UpdateOne(ctx, bson.M{"_id": postID}, update); err != nil {
		return false, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return liked, nil
}

// IncrementCommentCount adjusts the advisory comment counter by delta.
func (r *PostRepository) IncrementCommentCount(ctx context.Context, postID string, delta int) error {
	update := bson.M{"$inc": bson.M{"commentsCount": delta}}
	if _, err := r.posts.UpdateOne(ctx, bson.M{"_id": postID}, update); err != nil {
		return fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return nil
}

// likeUpdate picks the atomic set operation for the toggle and the liked
// state to report back.
func likeUpdate(likes []string, userID string) (bson.M, bool) {
	for _, id := range likes {
		if id == userID {
			return bson.M{"$pull": bson.M{"likes": userID}}, false
		}
	}
	return bson.M{"$addToSet": bson.M{"likes": userID}}, true
}

// sortPostsNewestFirst orders posts by creation time descending. A zero
// timestamp (not yet resolved by the server) sorts as "now".
func sortPostsNewestFirst(posts []models.Post) {
	now := time.Now()
	sort.SliceStable(posts, func(i, j int) bool {
		return creationTime(posts[i].CreatedAt, now).After(creationTime(posts[j].CreatedAt, now))
	})
}

func creationTime(t time.Time, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}
