package serializers

import (
	"encoding/json"
	"testing"

	"gin-bookreview/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSerializeBookNestsReviews(t *testing.T) {
	book := models.Book{
		Model:  gorm.Model{ID: 7},
		Title:  "1984",
		Author: "George Orwell",
		Reviews: []models.Review{
			{
				Model:   gorm.Model{ID: 1},
				Stars:   5,
				Comment: "A classic",
				BookID:  7,
				User:    models.User{Email: "user@example.com"},
			},
		},
	}

	response := SerializeBook(&book)
	assert.Equal(t, uint(7), response.ID)
	require.Len(t, response.Reviews, 1)
	assert.Equal(t, "user@example.com", response.Reviews[0].AuthorEmail)
	assert.Equal(t, uint(7), response.Reviews[0].Book)
}

func TestSerializeBookEmptyReviewsIsArray(t *testing.T) {
	book := models.Book{Model: gorm.Model{ID: 1}, Title: "1984", Author: "George Orwell"}

	payload, err := json.Marshal(SerializeBook(&book))
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"reviews":[]`)
}

func TestSerializeUserOmitsPassword(t *testing.T) {
	user := models.User{
		Model:    gorm.Model{ID: 3},
		Email:    "user@example.com",
		Password: "$2a$10$secret-hash",
		Active:   true,
	}

	payload, err := json.Marshal(SerializeUser(&user))
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "secret-hash")
	assert.Contains(t, string(payload), `"email":"user@example.com"`)
	assert.Contains(t, string(payload), `"is_active":true`)
}
