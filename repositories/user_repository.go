package repositories

import (
	"errors"

	"gin-bookreview/constants"
	"gin-bookreview/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user models.User) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(user models.User) (*models.User, error) {
	result := r.db.Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, with group memberships
// preloaded.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.Preload("Groups").First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrUserNotFound)
		}
		return nil, result.Error
	}
	return &user, nil
}
