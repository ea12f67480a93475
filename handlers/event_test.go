package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEventsWithoutStore(t *testing.T) {
	router := newTestRouter()

	for _, query := range []string{"", "?upcoming=false", "?community_id=c1&limit=3"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/events"+query, nil)
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Items []json.RawMessage `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Empty(t, resp.Items)
	}
}

func TestListEventsRejectsUnparseableUpcoming(t *testing.T) {
	router := newTestRouter()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?upcoming=soon", nil)
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateEvent(t *testing.T) {
	router := newTestRouter()

	t.Run("rejects missing starts_at", func(t *testing.T) {
		body := `{"community_id":"c1","title":"Meetup"}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects non RFC3339 starts_at", func(t *testing.T) {
		body := `{"community_id":"c1","title":"Meetup","starts_at":"next tuesday"}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("fails with unavailable store", func(t *testing.T) {
		body := `{"community_id":"c1","title":"Meetup","starts_at":"2026-09-12T18:00:00Z"}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
