// Package books provides database operations for the book catalog, including
// the search and top-rated aggregation queries.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	ranked, err := repo.TopRated(5)
package books

import (
	"math"

	"gorm.io/gorm"

	"github.com/RaghavArora1163/Advanced-API/internal/entities"
)

// RatedBook is the top-rated projection: a book joined with the mean of its
// review ratings, rounded to 2 decimal places.
type RatedBook struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	PublishedDate string  `json:"published_date"`
	AverageRating float64 `json:"average_rating"`
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook persists a new book. Duplicate titles are allowed.
func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Create(book).Error
}

// GetBookByID retrieves a book by its ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks retrieves every book in insertion order.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := r.db.Find(&books).Error
	return books, err
}

// SearchBooks searches books by title or author (case-insensitive partial match).
func (r *Repository) SearchBooks(query string) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	searchPattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", searchPattern, searchPattern).
		Find(&books).Error
	return books, err
}

// TopRated returns up to limit books ranked by mean review rating, highest
// first. Books without reviews are excluded by the inner join; ties are
// broken by book ID ascending so the order is deterministic.
func (r *Repository) TopRated(limit int) ([]RatedBook, error) {
	ranked := make([]RatedBook, 0, limit)
	err := r.db.Model(&entities.Book{}).
		Select("books.id, books.title, books.author, books.published_date, AVG(reviews.rating) AS average_rating").
		Joins("INNER JOIN reviews ON reviews.book_id = books.id").
		Group("books.id").
		Order("average_rating DESC, books.id ASC").
		Limit(limit).
		Scan(&ranked).Error
	if err != nil {
		return nil, err
	}

	// Round for display; the stored ratings stay exact.
	for i := range ranked {
		ranked[i].AverageRating = math.Round(ranked[i].AverageRating*100) / 100
	}
	return ranked, nil
}
