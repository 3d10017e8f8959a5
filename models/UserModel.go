package models

import (
	"time"
)

// User is both the credential record and the public profile document. The
// password hash never leaves the server; everything else is public.
type User struct {
	ID        string    `json:"uid" bson:"_id"`
	Name      string    `json:"name" bson:"name" validate:"required"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Password  string    `json:"-" bson:"password"`
	PhotoURL  string    `json:"photoURL" bson:"photoURL"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
