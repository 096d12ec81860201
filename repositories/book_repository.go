package repositories

import (
	"errors"

	"gin-bookreview/constants"
	"gin-bookreview/models"

	"gorm.io/gorm"
)

type IBookRepository interface {
	FindAll() (*[]models.Book, error)
	FindById(bookID uint) (*models.Book, error)
	Create(newBook models.Book) (*models.Book, error)
	Update(updatedBook models.Book) (*models.Book, error)
	Delete(bookID uint) error
}

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) IBookRepository {
	return &BookRepository{db: db}
}

// withReviews preloads each book's reviews in creation order, together with
// the review authors.
func withReviews(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at ASC, reviews.id ASC")
		}).
		Preload("Reviews.User")
}

func (r *BookRepository) FindAll() (*[]models.Book, error) {
	var books []models.Book
	result := withReviews(r.db).Find(&books)
	if result.Error != nil {
		return nil, result.Error
	}
	return &books, nil
}

func (r *BookRepository) FindById(bookID uint) (*models.Book, error) {
	var book models.Book
	result := withReviews(r.db).First(&book, "id = ?", bookID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrBookNotFound)
		}
		return nil, result.Error
	}
	return &book, nil
}

func (r *BookRepository) Create(newBook models.Book) (*models.Book, error) {
	result := r.db.Create(&newBook)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newBook, nil
}

func (r *BookRepository) Update(updatedBook models.Book) (*models.Book, error) {
	result := r.db.Omit("Reviews").Save(&updatedBook)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindById(updatedBook.ID)
}

// Delete removes a book and all of its reviews in one transaction.
func (r *BookRepository) Delete(bookID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Book{}, "id = ?", bookID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New(constants.ErrBookNotFound)
		}
		if err := tx.Where("book_id = ?", bookID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return nil
	})
}
