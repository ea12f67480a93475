package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckIn is an append-only geolocation record. Coordinates are stored as
// given; nothing range-checks them. No route reads check-ins back.
type CheckIn struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	CommunityID *string            `bson:"community_id" json:"community_id"`
	Lat         float64            `bson:"lat" json:"lat"`
	Lng         float64            `bson:"lng" json:"lng"`
	ShareStatus bool               `bson:"share_status" json:"share_status"`
	Note        *string            `bson:"note" json:"note"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
