package serializers

import "gin-bookreview/models"

// BookResponse is the wire form of a book, with its reviews nested in
// creation order.
type BookResponse struct {
	ID      uint             `json:"id"`
	Title   string           `json:"title"`
	Author  string           `json:"author"`
	Reviews []ReviewResponse `json:"reviews"`
}

// SerializeBook maps a book to its wire form. Reviews and their users must
// be preloaded.
func SerializeBook(book *models.Book) BookResponse {
	return BookResponse{
		ID:      book.ID,
		Title:   book.Title,
		Author:  book.Author,
		Reviews: SerializeReviews(book.Reviews),
	}
}

func SerializeBooks(books []models.Book) []BookResponse {
	responses := make([]BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, SerializeBook(&books[i]))
	}
	return responses
}
