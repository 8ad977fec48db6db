// Command generate_demo creates a demo database with sample data from public domain books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/RaghavArora1163/Advanced-API/internal/auth"
	"github.com/RaghavArora1163/Advanced-API/internal/config"
	"github.com/RaghavArora1163/Advanced-API/internal/database"
	"github.com/RaghavArora1163/Advanced-API/internal/database/books"
	"github.com/RaghavArora1163/Advanced-API/internal/database/reviews"
	"github.com/RaghavArora1163/Advanced-API/internal/database/users"
	"github.com/RaghavArora1163/Advanced-API/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

// demoReview pairs a review with the index of the seeded book it belongs to.
type demoReview struct {
	bookIndex int
	content   string
	rating    int
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	userRepository := users.NewRepository(db.DB)
	bookRepository := books.NewRepository(db.DB)
	reviewRepository := reviews.NewRepository(db.DB)
	authService := auth.NewService(userRepository, config.NewConfig().Auth)

	demoUser, err := authService.Register("demo", "demo-password")
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %q (password: demo-password)", demoUser.Username)

	demoBooks := getPublicDomainBooks()
	for i := range demoBooks {
		if err := bookRepository.CreateBook(&demoBooks[i]); err != nil {
			log.Printf("Failed to save book %s: %v", demoBooks[i].Title, err)
			continue
		}
		log.Printf("Saved: %s by %s", demoBooks[i].Title, demoBooks[i].Author)
	}

	for _, dr := range getDemoReviews() {
		review := &entities.Review{
			Content: dr.content,
			Rating:  dr.rating,
			UserID:  demoUser.ID,
			BookID:  demoBooks[dr.bookIndex].ID,
		}
		if err := reviewRepository.CreateReview(review); err != nil {
			log.Printf("Failed to save review for %s: %v", demoBooks[dr.bookIndex].Title, err)
		}
	}

	log.Println("Demo database generated successfully!")
}

func getPublicDomainBooks() []entities.Book {
	return []entities.Book{
		{Title: "Meditations", Author: "Marcus Aurelius", PublishedDate: "0180-01-01"},
		{Title: "Pride and Prejudice", Author: "Jane Austen", PublishedDate: "1813-01-28"},
		{Title: "Frankenstein", Author: "Mary Shelley", PublishedDate: "1818-01-01"},
		{Title: "Moby-Dick", Author: "Herman Melville", PublishedDate: "1851-10-18"},
		{Title: "The Origin of Species", Author: "Charles Darwin", PublishedDate: "1859-11-24"},
		{Title: "War and Peace", Author: "Leo Tolstoy", PublishedDate: "1869-01-01"},
	}
}

func getDemoReviews() []demoReview {
	return []demoReview{
		{bookIndex: 0, content: "Timeless. I reread a page most mornings.", rating: 5},
		{bookIndex: 0, content: "Repetitive in places, but that is rather the point.", rating: 4},
		{bookIndex: 1, content: "Sharp, funny, and still modern.", rating: 5},
		{bookIndex: 2, content: "The framing story drags; the middle is extraordinary.", rating: 4},
		{bookIndex: 3, content: "Skim the cetology chapters on a first read.", rating: 3},
		{bookIndex: 4, content: "Patient, careful argument. Slow going but worth it.", rating: 4},
	}
}
