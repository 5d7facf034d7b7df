package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "spendlog/internal/errors"
	"spendlog/internal/models"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user
func (s *userService) CreateUser(name, email, password string) (*models.User, error) {
	// Validate input
	if name == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name, email and password are required")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "password must be at least 6 characters")
	}

	// Check if user with email exists. Email comparison is exact; the
	// address is stored as supplied.
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.db.Create(user).Error; err != nil {
		// A concurrent registration can lose the race to the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicateEmail, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// AttemptLogin verifies credentials and returns the matching user.
// Unknown email and wrong password fail identically so the response
// does not reveal which one was wrong.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// UpdateProfile applies a partial update to the user's profile. A new
// password is re-validated against the minimum length and re-hashed.
func (s *userService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Name != "" {
		updates["name"] = update.Name
	}
	if update.Email != "" && update.Email != user.Email {
		var count int64
		if err := s.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", update.Email, userID).
			Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateEmail
		}
		updates["email"] = update.Email
	}
	if update.ProfilePicture != "" {
		updates["profile_picture"] = update.ProfilePicture
	}
	if update.Password != "" {
		if len(update.Password) < minPasswordLength {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "password must be at least 6 characters")
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updates["password"] = string(hashedPassword)
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return user, nil
}
