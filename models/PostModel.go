package models

import (
	"time"
)

// Post carries a snapshot of the author's name and photo taken at creation
// time. The snapshot is not kept in sync with later profile edits.
type Post struct {
	ID              string    `json:"id" bson:"_id"`
	Title           string    `json:"title" bson:"title"`
	Description     string    `json:"description" bson:"description"`
	ImageURL        string    `json:"imageUrl" bson:"imageUrl"`
	UserID          string    `json:"userId" bson:"userId"`
	UserDisplayName string    `json:"userDisplayName" bson:"userDisplayName"`
	UserPhotoURL    string    `json:"userPhotoURL" bson:"userPhotoURL"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
	Likes           []string  `json:"likes" bson:"likes"`
	CommentsCount   int       `json:"commentsCount" bson:"commentsCount"`
}

// LikedBy reports whether the given user is in the like set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
