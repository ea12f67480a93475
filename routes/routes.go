package routes

import (
	"net/http"
	"strings"
	"time"

	"communityapp/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(h *handlers.Handler) *gin.Engine {
	router := gin.Default()

	// Open CORS: any origin, any method, any header, credentials allowed.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", h.Root)
	router.GET("/test", h.TestDatabase)

	api := router.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	api.GET("/dashboard", h.Dashboard)

	api.GET("/communities", h.ListCommunities)
	api.GET("/communities/:id", h.CommunityDetail)
	api.POST("/communities/join", h.JoinCommunity)

	api.GET("/announcements", h.ListAnnouncements)
	api.POST("/announcements", h.CreateAnnouncement)

	api.GET("/events", h.ListEvents)
	api.POST("/events", h.CreateEvent)

	api.POST("/checkin", h.CheckIn)

	// JSON 404 for undefined API routes
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
		}
	})

	return router
}
