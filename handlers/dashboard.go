package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// monthStart is the first instant of now's calendar month in UTC.
func monthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Dashboard aggregates activity stats: active memberships, events and
// announcements in the current calendar month, the 5 soonest upcoming
// events and the 5 most recent announcements. The user_id query parameter
// is accepted but unused.
func (h *Handler) Dashboard(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusOK, gin.H{
			"stats": gin.H{
				"active_members":    0,
				"events_this_month": 0,
				"new_messages":      0,
			},
			"upcoming_events": []bson.M{},
			"announcements":   []bson.M{},
		})
		return
	}

	ctx, cancel := opCtx()
	defer cancel()

	now := time.Now().UTC()
	start := monthStart(now)

	activeMembers, err := h.DB.Memberships.CountDocuments(ctx, bson.M{"status": "active"})
	if err != nil {
		log.Printf("[Dashboard] membership count failed: %v", err)
	}
	eventsThisMonth, err := h.DB.Events.CountDocuments(ctx, bson.M{"starts_at": bson.M{"$gte": start}})
	if err != nil {
		log.Printf("[Dashboard] event count failed: %v", err)
	}
	newMessages, err := h.DB.Announcements.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": start}})
	if err != nil {
		log.Printf("[Dashboard] announcement count failed: %v", err)
	}

	upcoming := findDocs(ctx, h.DB.Events,
		bson.M{"starts_at": bson.M{"$gte": now}},
		bson.D{{Key: "starts_at", Value: 1}}, 5)
	latest := findDocs(ctx, h.DB.Announcements,
		bson.M{},
		bson.D{{Key: "created_at", Value: -1}}, 5)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"active_members":    activeMembers,
			"events_this_month": eventsThisMonth,
			"new_messages":      newMessages,
		},
		"upcoming_events": upcoming,
		"announcements":   latest,
	})
}
