package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"communityapp/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JoinCommunityRequest struct {
	CommunityID string `json:"community_id" binding:"required"`
	UserID      string `json:"user_id" binding:"required"`
}

// ListCommunities supports free-text search over title/description and the
// `mine` tab, which restricts results to communities the user has a
// membership row for. Both constraints land in a single find.
func (h *Handler) ListCommunities(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusOK, gin.H{"items": []bson.M{}, "count": 0})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{}
	if q := c.Query("q"); q != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": q, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": q, "$options": "i"}},
		}
	}
	if c.Query("tab") == "mine" && c.Query("user_id") != "" {
		ids, err := h.memberCommunityIDs(ctx, c.Query("user_id"))
		if err != nil {
			log.Printf("[ListCommunities] membership lookup failed: %v", err)
			c.JSON(http.StatusOK, gin.H{"items": []bson.M{}, "count": 0})
			return
		}
		filter["_id"] = bson.M{"$in": ids}
	}

	items := findDocs(ctx, h.DB.Communities, filter, nil, parseLimit(c, 20))
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// memberCommunityIDs resolves the ids of communities the user belongs to.
// Membership rows store community_id as a string; community `_id`s may be
// ObjectIDs or raw strings, so both forms go into the $in list.
func (h *Handler) memberCommunityIDs(ctx context.Context, userID string) (bson.A, error) {
	cursor, err := h.DB.Memberships.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.Membership
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := bson.A{}
	for _, m := range rows {
		ids = append(ids, m.CommunityID)
		if oid, err := primitive.ObjectIDFromHex(m.CommunityID); err == nil {
			ids = append(ids, oid)
		}
	}
	return ids, nil
}

// CommunityDetail returns one community with its membership rows and counts
// derived from the related collections (member_count here is the row count,
// not the cached counter on the community document).
func (h *Handler) CommunityDetail(c *gin.Context) {
	communityID := c.Param("id")

	if h.DB == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	var community bson.M
	err := h.DB.Communities.FindOne(ctx, idFilter(communityID)).Decode(&community)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
		return
	}
	if err != nil {
		log.Printf("[CommunityDetail] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, errDBUnavailable)
		return
	}

	members := findDocs(ctx, h.DB.Memberships, bson.M{"community_id": communityID}, nil, 0)
	events, err := h.DB.Events.CountDocuments(ctx, bson.M{"community_id": communityID})
	if err != nil {
		log.Printf("[CommunityDetail] event count failed: %v", err)
	}
	announcements, err := h.DB.Announcements.CountDocuments(ctx, bson.M{"community_id": communityID})
	if err != nil {
		log.Printf("[CommunityDetail] announcement count failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"community": apiDoc(community),
		"members":   members,
		"stats": gin.H{
			"member_count":  len(members),
			"events":        events,
			"announcements": announcements,
		},
	})
}

// JoinCommunity inserts a membership through a $setOnInsert upsert, so a
// repeat join is a no-op decided by the store rather than by a prior read.
// The member_count increment only runs when the upsert actually inserted;
// a crash between the two calls can still leave the counter behind.
func (h *Handler) JoinCommunity(c *gin.Context) {
	var req JoinCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.DB == nil {
		c.JSON(http.StatusInternalServerError, errDBUnavailable)
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	now := time.Now().UTC()
	res, err := h.DB.Memberships.UpdateOne(ctx,
		bson.M{"community_id": req.CommunityID, "user_id": req.UserID},
		bson.M{"$setOnInsert": bson.M{
			"role":       "member",
			"status":     "active",
			"created_at": now,
			"updated_at": now,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// Two concurrent joins can race the upsert into the unique index.
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusOK, gin.H{"status": "already_member"})
			return
		}
		log.Printf("[JoinCommunity] upsert failed: %v", err)
		c.JSON(http.StatusInternalServerError, errDBUnavailable)
		return
	}
	if res.UpsertedCount == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "already_member"})
		return
	}

	if _, err := h.DB.Communities.UpdateOne(ctx, idFilter(req.CommunityID),
		bson.M{"$inc": bson.M{"member_count": 1}}); err != nil {
		log.Printf("[JoinCommunity] member_count increment failed for %s: %v", req.CommunityID, err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "joined"})
}
