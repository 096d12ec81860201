package serializers

import "gin-bookreview/models"

// ReviewResponse is the wire form of a review. AuthorEmail is derived from
// the related user and is read-only; Book is the owning book's id.
type ReviewResponse struct {
	ID          uint   `json:"id"`
	Stars       int    `json:"stars"`
	Comment     string `json:"comment"`
	AuthorEmail string `json:"author_email"`
	Book        uint   `json:"book"`
}

// SerializeReview maps a review to its wire form. The review's User must be
// preloaded.
func SerializeReview(review *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:          review.ID,
		Stars:       review.Stars,
		Comment:     review.Comment,
		AuthorEmail: review.User.Email,
		Book:        review.BookID,
	}
}

func SerializeReviews(reviews []models.Review) []ReviewResponse {
	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, SerializeReview(&reviews[i]))
	}
	return responses
}
