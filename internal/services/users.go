package services

import (
	"fmt"

	"github.com/akshitha2508/blogpost/internal/models"
	"github.com/akshitha2508/blogpost/internal/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ProfileInput carries a partial profile update. Nil fields keep the
// prior value. AvatarURL is only set when a new avatar was uploaded.
type ProfileInput struct {
	Username  *string
	Email     *string
	Bio       *string
	AvatarURL string
}

// Register creates an account. The very first account on the site
// becomes admin; everyone after that starts as a regular user.
func (s *UserService) Register(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: hash,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return fmt.Errorf("%w: username already exists", ErrConflict)
		}

		var total int64
		if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
			return err
		}
		user.IsAdmin = total == 0

		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair. The response does
// not distinguish an unknown username from a wrong password.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return &user, nil
}

// UpdateProfile applies the fields present in the input. Username and
// email stay unique across accounts.
func (s *UserService) UpdateProfile(id uint, in ProfileInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}

	if in.Username != nil && *in.Username != user.Username {
		if *in.Username == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", ErrValidation)
		}
		var taken int64
		if err := s.db.Model(&models.User{}).Where("username = ? AND id <> ?", *in.Username, id).Count(&taken).Error; err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, fmt.Errorf("%w: username already exists", ErrConflict)
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		if *in.Email == "" {
			user.Email = nil
		} else {
			var taken int64
			if err := s.db.Model(&models.User{}).Where("email = ? AND id <> ?", *in.Email, id).Count(&taken).Error; err != nil {
				return nil, err
			}
			if taken > 0 {
				return nil, fmt.Errorf("%w: email already in use", ErrConflict)
			}
			user.Email = in.Email
		}
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
