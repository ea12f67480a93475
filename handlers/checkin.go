package handlers

import (
	"log"
	"net/http"
	"time"

	"communityapp/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lat/Lng are pointers so that 0 (a valid coordinate) passes the required
// check; the values themselves are stored without range validation.
type CheckInRequest struct {
	UserID      string   `json:"user_id" binding:"required"`
	CommunityID *string  `json:"community_id"`
	Lat         *float64 `json:"lat" binding:"required"`
	Lng         *float64 `json:"lng" binding:"required"`
	ShareStatus *bool    `json:"share_status"`
	Note        *string  `json:"note"`
}

// CheckIn appends a geolocation record. Nothing reads these back.
func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
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

	shareStatus := true
	if req.ShareStatus != nil {
		shareStatus = *req.ShareStatus
	}

	doc := models.CheckIn{
		ID:          primitive.NewObjectID(),
		UserID:      req.UserID,
		CommunityID: req.CommunityID,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		ShareStatus: shareStatus,
		Note:        req.Note,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := h.DB.CheckIns.InsertOne(ctx, doc); err != nil {
		log.Printf("[CheckIn] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, errDBUnavailable)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": doc.ID.Hex()})
}
