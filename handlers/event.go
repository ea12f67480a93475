package handlers

import (
	"log"
	"net/http"
	"time"

	"communityapp/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateEventRequest struct {
	CommunityID string     `json:"community_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    time.Time  `json:"starts_at" binding:"required"`
	EndsAt      *time.Time `json:"ends_at"`
}

// ListEvents returns events soonest-first. The upcoming flag defaults to
// true and restricts results to starts_at >= now; nothing checks ends_at.
func (h *Handler) ListEvents(c *gin.Context) {
	upcoming, err := parseBoolQuery(c, "upcoming", true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.DB == nil {
		c.JSON(http.StatusOK, gin.H{"items": []bson.M{}})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{}
	if id := c.Query("community_id"); id != "" {
		filter["community_id"] = id
	}
	if upcoming {
		filter["starts_at"] = bson.M{"$gte": time.Now().UTC()}
	}

	items := findDocs(ctx, h.DB.Events, filter,
		bson.D{{Key: "starts_at", Value: 1}}, parseLimit(c, 20))
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
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
	doc := models.Event{
		ID:          primitive.NewObjectID(),
		CommunityID: req.CommunityID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.EndsAt != nil {
		ends := req.EndsAt.UTC()
		doc.EndsAt = &ends
	}

	if _, err := h.DB.Events.InsertOne(ctx, doc); err != nil {
		log.Printf("[CreateEvent] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, errDBUnavailable)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": doc.ID.Hex()})
}
