package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaghavArora1163/Advanced-API/internal/entities"
)

func TestRegister(t *testing.T) {
	t.Run("creates an account", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performJSON(t, router, "POST", "/register", gin.H{
			"username": "alice",
			"password": "pw123",
		}, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "message")
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performJSON(t, router, "POST", "/register", gin.H{"username": "alice"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = performJSON(t, router, "POST", "/register", gin.H{"password": "pw123"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = performJSON(t, router, "POST", "/register", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects duplicate usernames and keeps a single account", func(t *testing.T) {
		router, db, cleanup := setupTestRouter(t)
		defer cleanup()

		registerUser(t, router, "alice", "pw123")

		w := performJSON(t, router, "POST", "/register", gin.H{
			"username": "alice",
			"password": "other",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")

		var count int64
		require.NoError(t, db.DB.Model(&entities.User{}).Where("username = ?", "alice").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
