package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RaghavArora1163/Advanced-API/internal/auth"
	"github.com/RaghavArora1163/Advanced-API/internal/config"
	"github.com/RaghavArora1163/Advanced-API/internal/database"
	"github.com/RaghavArora1163/Advanced-API/internal/database/books"
	"github.com/RaghavArora1163/Advanced-API/internal/database/reviews"
	"github.com/RaghavArora1163/Advanced-API/internal/database/users"
	http_controllers "github.com/RaghavArora1163/Advanced-API/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests within the
	// configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting book catalog API v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Repositories and services, constructed once and injected everywhere
	userRepository := users.NewRepository(db.DB)
	bookRepository := books.NewRepository(db.DB)
	reviewRepository := reviews.NewRepository(db.DB)
	authService := auth.NewService(userRepository, cfg.Auth)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:    db,
		AuthService: authService,
		Books:       bookRepository,
		BookFinder:  bookRepository,
		Reviews:     reviewRepository,
		Realm:       cfg.Auth.Realm,
		Version:     version,
	})

	Serve(router, cfg, nil)
}
