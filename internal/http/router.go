package http

import (
	"github.com/gin-gonic/gin"

	"github.com/RaghavArora1163/Advanced-API/internal/auth"
	"github.com/RaghavArora1163/Advanced-API/internal/database"
)

// RouterConfig carries all dependencies the handlers need. Everything is
// constructed once at startup and injected here; controllers hold no global
// state.
type RouterConfig struct {
	Database    *database.Database
	AuthService *auth.Service
	Books       BookStore
	BookFinder  BookFinder
	Reviews     ReviewStore
	Realm       string
	Version     string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	basicAuth := auth.NewMiddleware(cfg.AuthService, cfg.Realm)

	health := NewHealthController(cfg.Database, cfg.Version)
	usersController := NewUsersController(cfg.AuthService)
	booksController := NewBooksController(cfg.Books)
	reviewsController := NewReviewsController(cfg.BookFinder, cfg.Reviews)

	router.GET("/health", health.Status)

	router.POST("/register", usersController.Register)

	router.GET("/books", booksController.GetAllBooks)
	router.GET("/books/search", booksController.Search)
	router.GET("/books/top-rated", booksController.TopRated)
	router.GET("/books/:id/reviews", reviewsController.List)

	// Mutating catalog endpoints sit behind Basic authentication.
	protected := router.Group("", basicAuth.Handler())
	protected.POST("/books", booksController.Create)
	protected.POST("/books/:id/reviews", reviewsController.Create)

	return router
}
