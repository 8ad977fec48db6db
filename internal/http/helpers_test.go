package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/RaghavArora1163/Advanced-API/internal/auth"
	"github.com/RaghavArora1163/Advanced-API/internal/config"
	"github.com/RaghavArora1163/Advanced-API/internal/database"
	"github.com/RaghavArora1163/Advanced-API/internal/database/books"
	"github.com/RaghavArora1163/Advanced-API/internal/database/reviews"
	"github.com/RaghavArora1163/Advanced-API/internal/database/users"
)

// setupTestRouter builds the full router against a throwaway sqlite database,
// the same wiring the entrypoint performs at startup.
func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	userRepository := users.NewRepository(db.DB)
	bookRepository := books.NewRepository(db.DB)
	reviewRepository := reviews.NewRepository(db.DB)
	authService := auth.NewService(userRepository, config.Auth{BcryptCost: bcrypt.MinCost, Realm: "test"})

	router := NewRouter(RouterConfig{
		Database:    db,
		AuthService: authService,
		Books:       bookRepository,
		BookFinder:  bookRepository,
		Reviews:     reviewRepository,
		Realm:       "test",
		Version:     "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

// performJSON issues a request with an optional JSON body and optional Basic
// credentials ("user:pass").
func performJSON(t *testing.T, router *gin.Engine, method, path string, body any, basicAuth string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if basicAuth != "" {
		parts := strings.SplitN(basicAuth, ":", 2)
		req.SetBasicAuth(parts[0], parts[1])
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerUser registers an account through the API and fails the test if it
// does not succeed.
func registerUser(t *testing.T, router *gin.Engine, username, password string) {
	t.Helper()
	w := performJSON(t, router, "POST", "/register", gin.H{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "registering %s: %s", username, w.Body.String())
}

// decodeJSON unmarshals a response body into out.
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
