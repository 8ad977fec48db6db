package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RaghavArora1163/Advanced-API/internal/auth"
	"github.com/RaghavArora1163/Advanced-API/internal/entities"
)

// BookFinder resolves book existence for review endpoints.
type BookFinder interface {
	GetBookByID(id uint) (*entities.Book, error)
}

// ReviewStore is the review persistence the reviews controller needs.
type ReviewStore interface {
	CreateReview(review *entities.Review) error
	GetReviewsByBook(bookID uint) ([]entities.Review, error)
}

// CreateReviewRequest is the body of POST /books/:id/reviews.
type CreateReviewRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type ReviewsController struct {
	books   BookFinder
	reviews ReviewStore
}

func NewReviewsController(books BookFinder, reviews ReviewStore) *ReviewsController {
	return &ReviewsController{
		books:   books,
		reviews: reviews,
	}
}

// Create adds a review to an existing book on behalf of the authenticated
// user. The book is resolved before the body is validated, so an unknown
// book is always a 404 regardless of payload.
func (controller *ReviewsController) Create(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := controller.books.GetBookByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err)
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "content and a rating between 1 and 5 are required")
		return
	}
	if req.Content == "" || req.Rating < 1 || req.Rating > 5 {
		respondBadRequest(c, "content and a rating between 1 and 5 are required")
		return
	}

	review := &entities.Review{
		Content: req.Content,
		Rating:  req.Rating,
		UserID:  auth.GetUserID(c),
		BookID:  bookID,
	}
	if err := controller.reviews.CreateReview(review); err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// List returns every review for a book, unordered. An unknown book is a 404,
// never an empty 200.
func (controller *ReviewsController) List(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := controller.books.GetBookByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err)
		return
	}

	bookReviews, err := controller.reviews.GetReviewsByBook(bookID)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookReviews)
}
