package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CommunityID string             `bson:"community_id" json:"community_id"`
	Title       string             `bson:"title" json:"title"`
	Description *string            `bson:"description" json:"description"`
	Location    *string            `bson:"location" json:"location"`
	StartsAt    time.Time          `bson:"starts_at" json:"starts_at"`
	EndsAt      *time.Time         `bson:"ends_at" json:"ends_at"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
