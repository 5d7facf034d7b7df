package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendlog/internal/errors"
	"spendlog/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the payload for creating or updating a category
type CategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color" binding:"omitempty,hex_color"`
}

// BulkCategoryRequest represents the payload for creating many categories at once
type BulkCategoryRequest struct {
	Categories []CategoryRequest `json:"categories" binding:"required,min=1,dive"`
}

func (r CategoryRequest) toInput() services.CategoryInput {
	return services.CategoryInput{Name: r.Name, Icon: r.Icon, Color: r.Color}
}

// ListCategories returns all categories with their expense counts
// @Summary     List categories
// @Description List all categories ordered by name, with referencing-expense counts
// @Tags        categories
// @Accept      json
// @Produce     json
// @Success     200 {array} models.CategoryWithCount "List of categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory returns a single category with its expense count
// @Summary     Get category by ID
// @Description Get a single category with its referencing-expense count
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} models.CategoryWithCount "Category details"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// CreateCategory creates a new category
// @Summary     Create a category
// @Description Create a new category with a case-insensitively unique name
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Category name already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// BulkCreateCategories creates many categories as one atomic batch
// @Summary     Bulk create categories
// @Description Create a batch of categories; the batch is all-or-nothing
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BulkCategoryRequest true "Categories to create"
// @Success     201 {array} models.Category "Categories created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "One or more names already exist"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/bulk [post]
func (h *CategoryHandler) BulkCreateCategories(c *gin.Context) {
	var req BulkCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inputs := make([]services.CategoryInput, 0, len(req.Categories))
	for _, cat := range req.Categories {
		inputs = append(inputs, cat.toInput())
	}

	categories, err := h.categoryService.BulkCreateCategories(inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"categories": categories})
}

// UpdateCategory updates a category
// @Summary     Update category
// @Description Update a category's name, icon, and color
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Param       request body CategoryRequest true "Updated category details"
// @Success     200 {object} models.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input or category ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category name already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(categoryID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory deletes a category with no referencing expenses
// @Summary     Delete category
// @Description Delete a category; fails with 409 if expenses reference it
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category has associated expenses"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.DeleteCategory(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Category deleted successfully",
		"deleted_category": category.Name,
	})
}

// ForceDeleteCategory deletes a category and reassigns its expenses
// @Summary     Force delete category
// @Description Delete a category and move its expenses to the fallback "Other" category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} services.ForceDeleteResult "Category deleted, expenses moved"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Fallback category cannot be force deleted"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id}/force [delete]
func (h *CategoryHandler) ForceDeleteCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.categoryService.ForceDeleteCategory(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Category deleted successfully. Associated expenses moved to 'Other' category.",
		"deleted_category":  result.DeletedCategory,
		"moved_to_category": result.MovedToCategory,
		"moved_expenses":    result.MovedExpenses,
	})
}

// InitializeDefaults seeds the default category set
// @Summary     Initialize default categories
// @Description Seed the fixed default category set; only allowed while no categories exist
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     201 {array} models.Category "Default categories created"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Categories already exist"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/initialize [post]
func (h *CategoryHandler) InitializeDefaults(c *gin.Context) {
	categories, err := h.categoryService.InitializeDefaults()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Default categories initialized successfully",
		"categories": categories,
	})
}
