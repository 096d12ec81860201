package services

import (
	"gin-bookreview/dto"
	"gin-bookreview/models"
	"gin-bookreview/repositories"
)

type IReviewService interface {
	FindAll() (*[]models.Review, error)
	FindById(reviewID uint) (*models.Review, error)
	Create(createReviewInput dto.CreateReviewInput, userID uint) (*models.Review, error)
	Update(reviewID uint, updateReviewInput dto.UpdateReviewInput) (*models.Review, error)
	Delete(reviewID uint) error
}

type ReviewService struct {
	repository     repositories.IReviewRepository
	bookRepository repositories.IBookRepository
}

func NewReviewService(repository repositories.IReviewRepository, bookRepository repositories.IBookRepository) IReviewService {
	return &ReviewService{
		repository:     repository,
		bookRepository: bookRepository,
	}
}

func (s *ReviewService) FindAll() (*[]models.Review, error) {
	return s.repository.FindAll()
}

func (s *ReviewService) FindById(reviewID uint) (*models.Review, error) {
	return s.repository.FindById(reviewID)
}

// Create persists a review for the given book. The author is always the
// authenticated user, never client input.
func (s *ReviewService) Create(createReviewInput dto.CreateReviewInput, userID uint) (*models.Review, error) {
	if _, err := s.bookRepository.FindById(createReviewInput.Book); err != nil {
		return nil, err
	}

	newReview := models.Review{
		Stars:   createReviewInput.Stars,
		Comment: createReviewInput.Comment,
		BookID:  createReviewInput.Book,
		UserID:  userID,
	}
	return s.repository.Create(newReview)
}

func (s *ReviewService) Update(reviewID uint, updateReviewInput dto.UpdateReviewInput) (*models.Review, error) {
	targetReview, err := s.repository.FindById(reviewID)
	if err != nil {
		return nil, err
	}

	if _, err := s.bookRepository.FindById(updateReviewInput.Book); err != nil {
		return nil, err
	}

	targetReview.Stars = updateReviewInput.Stars
	targetReview.Comment = updateReviewInput.Comment
	targetReview.BookID = updateReviewInput.Book
	return s.repository.Update(*targetReview)
}

func (s *ReviewService) Delete(reviewID uint) error {
	return s.repository.Delete(reviewID)
}
