package models

import (
	"time"
)

type Comment struct {
	ID              string    `json:"id" bson:"_id"`
	PostID          string    `json:"postId" bson:"postId"`
	UserID          string    `json:"userId" bson:"userId"`
	UserDisplayName string    `json:"userDisplayName" bson:"userDisplayName"`
	UserPhotoURL    string    `json:"userPhotoURL" bson:"userPhotoURL"`
	Content         string    `json:"content" bson:"content"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}
