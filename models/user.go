package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthUser is a document in the authuser collection. PasswordHash is the hex
// sha256 of the raw password; login matches on (email, password_hash)
// equality, so the hash format must not change.
type AuthUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	AvatarURL    *string            `bson:"avatar_url" json:"avatar_url"`
	Locale       string             `bson:"locale" json:"locale"`
	Role         string             `bson:"role" json:"role"` // user, admin
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
