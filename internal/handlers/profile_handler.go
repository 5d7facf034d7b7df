package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendlog/internal/errors"
	"spendlog/internal/models"
	"spendlog/internal/services"
)

// ProfileHandler handles user profile requests
type ProfileHandler struct {
	userService services.UserServicer
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userService services.UserServicer) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// UpdateProfileRequest represents the profile update payload. Any
// subset of fields may be supplied; absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name           string `json:"name" binding:"omitempty,max=100"`
	Email          string `json:"email" binding:"omitempty,email,max=255"`
	Password       string `json:"password" binding:"omitempty,min=6,max=128"`
	ProfilePicture string `json:"profile_picture" binding:"omitempty,max=2048"`
}

// ProfileResponse represents the user profile in responses.
type ProfileResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

func profileResponse(user *models.User) ProfileResponse {
	return ProfileResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
	}
}

// GetProfile returns the authenticated user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ProfileResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profileResponse(user)})
}

// UpdateProfile applies a partial update to the authenticated user's profile
// @Summary     Update user profile
// @Description Update any subset of name, email, password, and profile picture
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile fields to update"
// @Success     200 {object} ProfileResponse "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Email already in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.UpdateProfile(userID, services.ProfileUpdate{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"user":    profileResponse(user),
	})
}
