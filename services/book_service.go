package services

import (
	"gin-bookreview/dto"
	"gin-bookreview/models"
	"gin-bookreview/repositories"
)

type IBookService interface {
	FindAll() (*[]models.Book, error)
	FindById(bookID uint) (*models.Book, error)
	Create(createBookInput dto.CreateBookInput) (*models.Book, error)
	Update(bookID uint, updateBookInput dto.UpdateBookInput) (*models.Book, error)
	Delete(bookID uint) error
}

type BookService struct {
	repository repositories.IBookRepository
}

func NewBookService(repository repositories.IBookRepository) IBookService {
	return &BookService{repository: repository}
}

func (s *BookService) FindAll() (*[]models.Book, error) {
	return s.repository.FindAll()
}

func (s *BookService) FindById(bookID uint) (*models.Book, error) {
	return s.repository.FindById(bookID)
}

func (s *BookService) Create(createBookInput dto.CreateBookInput) (*models.Book, error) {
	newBook := models.Book{
		Title:  createBookInput.Title,
		Author: createBookInput.Author,
	}
	return s.repository.Create(newBook)
}

func (s *BookService) Update(bookID uint, updateBookInput dto.UpdateBookInput) (*models.Book, error) {
	targetBook, err := s.repository.FindById(bookID)
	if err != nil {
		return nil, err
	}

	targetBook.Title = updateBookInput.Title
	targetBook.Author = updateBookInput.Author
	return s.repository.Update(*targetBook)
}

func (s *BookService) Delete(bookID uint) error {
	return s.repository.Delete(bookID)
}
