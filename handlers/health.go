package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Root is the service banner.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Community API running"})
}

// TestDatabase reports store reachability. It never fails the request:
// internal errors are truncated into the response body.
func (h *Handler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.DB == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "✅ Available"
	if os.Getenv("MONGODB_URI") != "" {
		response["database_url"] = "✅ Set"
	} else {
		response["database_url"] = "❌ Not Set"
	}
	response["database_name"] = h.DB.Name()
	response["connection_status"] = "Connected"

	ctx, cancel := opCtx()
	defer cancel()

	names, err := h.DB.CollectionNames(ctx)
	if err != nil {
		response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
	} else {
		if len(names) > 10 {
			names = names[:10]
		}
		response["collections"] = names
		response["database"] = "✅ Connected & Working"
	}

	c.JSON(http.StatusOK, response)
}

// truncate counts runes, not bytes, so multibyte driver errors are never
// cut mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
