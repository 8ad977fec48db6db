package auth

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys for user data
const (
	ContextKeyUserID   = "auth_user_id"
	ContextKeyUsername = "auth_username"
)

// Middleware gates handlers behind HTTP Basic authentication. It carries no
// per-request state; credentials are verified on every call.
type Middleware struct {
	service *Service
	realm   string
}

// NewMiddleware creates a new Basic authentication middleware.
func NewMiddleware(service *Service, realm string) *Middleware {
	return &Middleware{
		service: service,
		realm:   realm,
	}
}

// Handler returns a Gin middleware that authenticates requests. Requests
// without a well-formed Basic header are rejected before the user store is
// consulted.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			m.unauthorized(c)
			return
		}

		user, err := m.service.Authenticate(username, password)
		if err != nil {
			m.unauthorized(c)
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUsername, user.Username)
		c.Next()
	}
}

// unauthorized aborts with a body that is identical for missing and invalid
// credentials.
func (m *Middleware) unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", m.realm))
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "invalid credentials",
	})
}

// GetUserID extracts the authenticated user's ID from the Gin context.
// Returns 0 when no user is authenticated.
func GetUserID(c *gin.Context) uint {
	if value, exists := c.Get(ContextKeyUserID); exists {
		if id, ok := value.(uint); ok {
			return id
		}
	}
	return 0
}
