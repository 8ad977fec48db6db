package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RaghavArora1163/Advanced-API/internal/auth"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UsersController struct {
	auth *auth.Service
}

func NewUsersController(authService *auth.Service) *UsersController {
	return &UsersController{
		auth: authService,
	}
}

// Register creates a new account. Duplicate usernames and missing fields are
// both 400s.
func (controller *UsersController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	_, err := controller.auth.Register(req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, MessageResponse{Message: "user registered successfully"})
	case errors.Is(err, auth.ErrUsernameRequired), errors.Is(err, auth.ErrPasswordRequired):
		respondBadRequest(c, "username and password are required")
	case errors.Is(err, auth.ErrUserExists):
		respondBadRequest(c, "username already exists")
	case errors.Is(err, auth.ErrPasswordTooLong):
		respondBadRequest(c, err.Error())
	default:
		respondInternalError(c, err)
	}
}
