package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"communityapp/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// hashPassword matches the stored format: one unsalted sha256 round, hex
// encoded. Login looks users up by (email, password_hash) equality, so the
// derivation has to stay deterministic.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// deriveToken is sha256(id + email). It is not a session credential: no
// route verifies it, and anyone holding the id and email can recompute it.
func deriveToken(id, email string) string {
	sum := sha256.Sum256([]byte(id + email))
	return hex.EncodeToString(sum[:])
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
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
	user := models.AuthUser{
		ID:           primitive.NewObjectID(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hashPassword(req.Password),
		Locale:       "id",
		Role:         "user",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique email index carries the duplicate check; no read first.
	if _, err := h.DB.Users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		log.Printf("[Register] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, errDBUnavailable)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": gin.H{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
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

	var user models.AuthUser
	err := h.DB.Users.FindOne(ctx, bson.M{
		"email":         req.Email,
		"password_hash": hashPassword(req.Password),
	}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		// Same response for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Printf("[Login] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, errDBUnavailable)
		return
	}

	id := user.ID.Hex()
	c.JSON(http.StatusOK, gin.H{
		"user":  gin.H{"id": id, "email": user.Email, "name": user.Name},
		"token": deriveToken(id, user.Email),
	})
}
