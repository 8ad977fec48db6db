// Package reviews provides database operations for book reviews.
package reviews

import (
	"gorm.io/gorm"

	"github.com/RaghavArora1163/Advanced-API/internal/entities"
)

// Repository handles all review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateReview persists a new review. CreatedAt is assigned by GORM at
// insertion time.
func (r *Repository) CreateReview(review *entities.Review) error {
	return r.db.Create(review).Error
}

// GetReviewsByBook retrieves all reviews for a book. The caller is expected
// to have checked that the book exists.
func (r *Repository) GetReviewsByBook(bookID uint) ([]entities.Review, error) {
	reviews := make([]entities.Review, 0)
	err := r.db.Where("book_id = ?", bookID).Find(&reviews).Error
	return reviews, err
}
