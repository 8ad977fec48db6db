package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RaghavArora1163/Advanced-API/internal/database/books"
	"github.com/RaghavArora1163/Advanced-API/internal/entities"
)

// topRatedLimit is the fixed size of the top-rated ranking.
const topRatedLimit = 5

// BookStore is the catalog access the books controller needs.
type BookStore interface {
	CreateBook(book *entities.Book) error
	GetAllBooks() ([]entities.Book, error)
	SearchBooks(query string) ([]entities.Book, error)
	TopRated(limit int) ([]books.RatedBook, error)
}

// CreateBookRequest is the body of POST /books.
type CreateBookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedDate string `json:"published_date"`
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{
		store: store,
	}
}

// Create adds a book to the catalog. All three fields are mandatory; no
// duplicate detection is performed.
func (controller *BooksController) Create(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title, author and published_date are required")
		return
	}
	if req.Title == "" || req.Author == "" || req.PublishedDate == "" {
		respondBadRequest(c, "title, author and published_date are required")
		return
	}

	book := &entities.Book{
		Title:         req.Title,
		Author:        req.Author,
		PublishedDate: req.PublishedDate,
	}
	if err := controller.store.CreateBook(book); err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

// GetAllBooks lists the whole catalog in insertion order, unpaginated.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	allBooks, err := controller.store.GetAllBooks()
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, allBooks)
}

// Search matches the q parameter against title or author, case-insensitively.
// A missing q is a validation error, not an empty result.
func (controller *BooksController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondBadRequest(c, "search query is required")
		return
	}

	matches, err := controller.store.SearchBooks(query)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// TopRated returns up to five books ranked by mean review rating. Books
// without reviews never appear.
func (controller *BooksController) TopRated(c *gin.Context) {
	ranked, err := controller.store.TopRated(topRatedLimit)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}
