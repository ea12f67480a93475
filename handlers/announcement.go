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

type CreateAnnouncementRequest struct {
	CommunityID string  `json:"community_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Message     string  `json:"message" binding:"required"`
	AuthorID    *string `json:"author_id"`
}

// ListAnnouncements returns announcements newest-first, optionally scoped to
// one community.
func (h *Handler) ListAnnouncements(c *gin.Context) {
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

	items := findDocs(ctx, h.DB.Announcements, filter,
		bson.D{{Key: "created_at", Value: -1}}, parseLimit(c, 20))
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var req CreateAnnouncementRequest
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
	doc := models.Announcement{
		ID:          primitive.NewObjectID(),
		CommunityID: req.CommunityID,
		Title:       req.Title,
		Message:     req.Message,
		AuthorID:    req.AuthorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := h.DB.Announcements.InsertOne(ctx, doc); err != nil {
		log.Printf("[CreateAnnouncement] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, errDBUnavailable)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": doc.ID.Hex()})
}
