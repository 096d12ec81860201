package repositories

import (
	"testing"

	"gin-bookreview/constants"
	"gin-bookreview/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Group{}, &models.Book{}, &models.Review{}))
	return db
}

func seedBookWithReviews(t *testing.T, db *gorm.DB) models.Book {
	t.Helper()
	user := models.User{Email: "user@example.com", Password: "hash", Active: true}
	require.NoError(t, db.Create(&user).Error)

	book := models.Book{Title: "1984", Author: "George Orwell"}
	require.NoError(t, db.Create(&book).Error)

	for _, comment := range []string{"first", "second"} {
		review := models.Review{Stars: 4, Comment: comment, UserID: user.ID, BookID: book.ID}
		require.NoError(t, db.Create(&review).Error)
	}
	return book
}

func TestFindByIdPreloadsReviewsInOrder(t *testing.T) {
	db := openTestDB(t)
	repository := NewBookRepository(db)
	book := seedBookWithReviews(t, db)

	found, err := repository.FindById(book.ID)
	require.NoError(t, err)
	require.Len(t, found.Reviews, 2)
	assert.Equal(t, "first", found.Reviews[0].Comment)
	assert.Equal(t, "second", found.Reviews[1].Comment)
	assert.Equal(t, "user@example.com", found.Reviews[0].User.Email)
}

func TestFindByIdNotFound(t *testing.T) {
	db := openTestDB(t)
	repository := NewBookRepository(db)

	_, err := repository.FindById(99)
	require.Error(t, err)
	assert.Equal(t, constants.ErrBookNotFound, err.Error())
}

func TestDeleteRemovesReviews(t *testing.T) {
	db := openTestDB(t)
	repository := NewBookRepository(db)
	reviewRepository := NewReviewRepository(db)
	book := seedBookWithReviews(t, db)

	require.NoError(t, repository.Delete(book.ID))

	_, err := repository.FindById(book.ID)
	require.Error(t, err)

	reviews, err := reviewRepository.FindAll()
	require.NoError(t, err)
	assert.Empty(t, *reviews)
}

func TestDeleteMissingBook(t *testing.T) {
	db := openTestDB(t)
	repository := NewBookRepository(db)

	err := repository.Delete(99)
	require.Error(t, err)
	assert.Equal(t, constants.ErrBookNotFound, err.Error())
}

func TestUpdateKeepsReviews(t *testing.T) {
	db := openTestDB(t)
	repository := NewBookRepository(db)
	book := seedBookWithReviews(t, db)

	found, err := repository.FindById(book.ID)
	require.NoError(t, err)

	found.Title = "Nineteen Eighty-Four"
	updated, err := repository.Update(*found)
	require.NoError(t, err)
	assert.Equal(t, "Nineteen Eighty-Four", updated.Title)
	assert.Len(t, updated.Reviews, 2)
}
