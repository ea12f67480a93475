package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership links a user to a community. A unique compound index on
// (user_id, community_id) guards against duplicate rows.
type Membership struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	CommunityID string             `bson:"community_id" json:"community_id"`
	Role        string             `bson:"role" json:"role"`     // member, admin
	Status      string             `bson:"status" json:"status"` // active, pending
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
