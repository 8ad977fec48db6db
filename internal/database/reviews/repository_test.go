package reviews

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RaghavArora1163/Advanced-API/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_reviews_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.Book{}, &entities.Review{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func TestRepository_CreateReview(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{Title: "Dune", Author: "Frank Herbert", PublishedDate: "1965-08-01"}
	require.NoError(t, db.Create(book).Error)

	review := &entities.Review{Content: "Great", Rating: 5, UserID: 1, BookID: book.ID}
	err := repo.CreateReview(review)

	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.False(t, review.CreatedAt.IsZero(), "CreatedAt should be assigned at insertion")
}

func TestRepository_GetReviewsByBook(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	first := &entities.Book{Title: "Dune", Author: "Frank Herbert", PublishedDate: "1965-08-01"}
	second := &entities.Book{Title: "Hyperion", Author: "Dan Simmons", PublishedDate: "1989-05-26"}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	require.NoError(t, repo.CreateReview(&entities.Review{Content: "a", Rating: 4, UserID: 1, BookID: first.ID}))
	require.NoError(t, repo.CreateReview(&entities.Review{Content: "b", Rating: 5, UserID: 1, BookID: first.ID}))
	require.NoError(t, repo.CreateReview(&entities.Review{Content: "c", Rating: 3, UserID: 1, BookID: second.ID}))

	reviews, err := repo.GetReviewsByBook(first.ID)

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	for _, review := range reviews {
		assert.Equal(t, first.ID, review.BookID)
	}
}

func TestRepository_GetReviewsByBook_Empty(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{Title: "Dune", Author: "Frank Herbert", PublishedDate: "1965-08-01"}
	require.NoError(t, db.Create(book).Error)

	reviews, err := repo.GetReviewsByBook(book.ID)

	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
