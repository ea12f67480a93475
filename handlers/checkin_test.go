package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckIn(t *testing.T) {
	router := newTestRouter()

	t.Run("rejects missing coordinates", func(t *testing.T) {
		body := `{"user_id":"u1","lat":1.5}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/checkin", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("zero coordinates pass validation", func(t *testing.T) {
		// (0, 0) is a valid location; only the absent store fails the call.
		body := `{"user_id":"u1","lat":0,"lng":0}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/checkin", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("fails with unavailable store", func(t *testing.T) {
		body := `{"user_id":"u1","community_id":"c1","lat":-6.2,"lng":106.8,"note":"arrived"}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/checkin", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
