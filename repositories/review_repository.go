package repositories

import (
	"errors"

	"gin-bookreview/constants"
	"gin-bookreview/models"

	"gorm.io/gorm"
)

type IReviewRepository interface {
	FindAll() (*[]models.Review, error)
	FindById(reviewID uint) (*models.Review, error)
	Create(newReview models.Review) (*models.Review, error)
	Update(updatedReview models.Review) (*models.Review, error)
	Delete(reviewID uint) error
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) IReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) FindAll() (*[]models.Review, error) {
	var reviews []models.Review
	result := r.db.Preload("User").Order("created_at ASC, id ASC").Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}
	return &reviews, nil
}

func (r *ReviewRepository) FindById(reviewID uint) (*models.Review, error) {
	var review models.Review
	result := r.db.Preload("User").First(&review, "id = ?", reviewID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrReviewNotFound)
		}
		return nil, result.Error
	}
	return &review, nil
}

func (r *ReviewRepository) Create(newReview models.Review) (*models.Review, error) {
	result := r.db.Create(&newReview)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindById(newReview.ID)
}

func (r *ReviewRepository) Update(updatedReview models.Review) (*models.Review, error) {
	result := r.db.Omit("User", "Book").Save(&updatedReview)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindById(updatedReview.ID)
}

func (r *ReviewRepository) Delete(reviewID uint) error {
	result := r.db.Delete(&models.Review{}, "id = ?", reviewID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New(constants.ErrReviewNotFound)
	}
	return nil
}
