package serializers

import (
	"gin-bookreview/dto"
	"gin-bookreview/models"
)

// SerializeUser maps a user to its public wire form. The password hash is
// never exposed.
func SerializeUser(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:     user.ID,
		Email:  user.Email,
		Active: user.Active,
		Staff:  user.Staff,
	}
}
