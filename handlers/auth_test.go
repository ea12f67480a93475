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

func TestHashPassword(t *testing.T) {
	// Fixed vector: the stored format is plain sha256 hex and must not drift.
	assert.Equal(t,
		"30c952fab122c3f9759f02a6d95c3758b246b4fee239957b2d4fee46e26170c4",
		hashPassword("pw"))

	assert.Equal(t, hashPassword("secret123"), hashPassword("secret123"))
	assert.NotEqual(t, hashPassword("secret123"), hashPassword("secret124"))
}

func TestDeriveToken(t *testing.T) {
	// sha256("65f0a1b2c3d4e5f6a7b8c9d0" + "a@x.com")
	assert.Equal(t,
		"f996ef20e17160015d20c4ad8dd1e7a0ab0d6439b44002b7beeb0a11a56dbedd",
		deriveToken("65f0a1b2c3d4e5f6a7b8c9d0", "a@x.com"))

	assert.Equal(t,
		deriveToken("65f0a1b2c3d4e5f6a7b8c9d0", "a@x.com"),
		deriveToken("65f0a1b2c3d4e5f6a7b8c9d0", "a@x.com"))
	assert.NotEqual(t,
		deriveToken("65f0a1b2c3d4e5f6a7b8c9d0", "a@x.com"),
		deriveToken("65f0a1b2c3d4e5f6a7b8c9d0", "b@x.com"))
}

func TestRegister(t *testing.T) {
	router := newTestRouter()

	t.Run("rejects malformed email before any store access", func(t *testing.T) {
		body := `{"email":"not-an-email","name":"Ann","password":"pw"}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects missing password", func(t *testing.T) {
		body := `{"email":"a@x.com","name":"Ann"}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("fails with unavailable store", func(t *testing.T) {
		body := `{"email":"a@x.com","name":"Ann","password":"pw"}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Database unavailable", resp["error"])
	})
}

func TestLogin(t *testing.T) {
	router := newTestRouter()

	t.Run("rejects missing password", func(t *testing.T) {
		body := `{"email":"a@x.com"}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("fails with unavailable store", func(t *testing.T) {
		body := `{"email":"a@x.com","password":"pw"}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
