package dto

type CreateReviewInput struct {
	Stars   int    `json:"stars" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=2000"`
	Book    uint   `json:"book" binding:"required"`
}

// UpdateReviewInput is a full replacement; PUT requires every writable field.
// The author is never writable.
type UpdateReviewInput struct {
	Stars   int    `json:"stars" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=2000"`
	Book    uint   `json:"book" binding:"required"`
}
