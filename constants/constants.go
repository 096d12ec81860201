package constants

// Group names
const (
	GroupBookAdmin = "book_admin"
)

// Error messages
const (
	ErrBookNotFound   = "Book not found"
	ErrReviewNotFound = "Review not found"
	ErrUserNotFound   = "User not found"
	ErrUnexpected     = "Unexpected error"
)
