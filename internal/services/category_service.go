package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "spendlog/internal/errors"
	"spendlog/internal/models"
)

// defaultCategories is the seed set created by InitializeDefaults.
var defaultCategories = []models.Category{
	{Name: "Food", Icon: "restaurant", Color: "#EF4444"},
	{Name: "Transport", Icon: "directions-car", Color: "#3B82F6"},
	{Name: "Shopping", Icon: "shopping-bag", Color: "#8B5CF6"},
	{Name: "Entertainment", Icon: "movie", Color: "#F59E0B"},
	{Name: "Utilities", Icon: "house", Color: "#10B981"},
	{Name: "Health", Icon: "medical-services", Color: "#EC4899"},
	{Name: "Education", Icon: "school", Color: "#6366F1"},
	{Name: "Other", Icon: "category", Color: "#6B7280"},
}

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// findByNameInsensitive looks up a category by case-insensitive name,
// optionally excluding one ID (for update collision checks).
func findByNameInsensitive(db *gorm.DB, name, excludeID string) (*models.Category, error) {
	query := db.Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var category models.Category
	if err := query.First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// applyDefaults fills empty icon/color with the fixed fallback tokens.
func applyDefaults(input CategoryInput) CategoryInput {
	input.Name = strings.TrimSpace(input.Name)
	if input.Icon == "" {
		input.Icon = models.DefaultCategoryIcon
	}
	if input.Color == "" {
		input.Color = models.DefaultCategoryColor
	}
	return input
}

// CreateCategory creates a new category with a case-insensitively
// unique name.
func (s *categoryService) CreateCategory(input CategoryInput) (*models.Category, error) {
	input = applyDefaults(input)
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	existing, err := findByNameInsensitive(s.db, input.Name, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		Name:  input.Name,
		Icon:  input.Icon,
		Color: input.Color,
	}

	if err := s.db.Create(category).Error; err != nil {
		// Lost a race with a concurrent create for the same name.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicateCategory, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// BulkCreateCategories creates a batch of categories as a single
// all-or-nothing unit. If any entry collides with an existing name or
// another entry in the batch, nothing is persisted.
func (s *categoryService) BulkCreateCategories(inputs []CategoryInput) ([]models.Category, error) {
	if len(inputs) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "categories array is required")
	}

	prepared := make([]CategoryInput, 0, len(inputs))
	for _, input := range inputs {
		input = applyDefaults(input)
		if input.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "all categories must have a name")
		}
		prepared = append(prepared, input)
	}

	created := make([]models.Category, 0, len(prepared))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		seen := make(map[string]bool, len(prepared))
		for _, input := range prepared {
			key := strings.ToLower(input.Name)
			if seen[key] {
				return apperrors.WithMessage(apperrors.ErrDuplicateCategory,
					fmt.Sprintf("duplicate category name in batch: %s", input.Name))
			}
			seen[key] = true

			existing, err := findByNameInsensitive(tx, input.Name, "")
			if err != nil {
				return err
			}
			if existing != nil {
				return apperrors.WithMessage(apperrors.ErrDuplicateCategory, "one or more categories already exist")
			}

			category := models.Category{
				Name:  input.Name,
				Icon:  input.Icon,
				Color: input.Color,
			}
			if err := tx.Create(&category).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.Wrap(apperrors.ErrDuplicateCategory, err)
				}
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			created = append(created, category)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListCategories returns all categories ordered by name ascending, each
// annotated with its referencing-expense count.
func (s *categoryService) ListCategories() ([]models.CategoryWithCount, error) {
	var categories []models.CategoryWithCount
	err := s.db.Model(&models.Category{}).
		Select("categories.*, COUNT(expenses.id) AS expense_count").
		Joins("LEFT JOIN expenses ON expenses.category_id = categories.id").
		Group("categories.id").
		Order("categories.name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category with its expense count.
func (s *categoryService) GetCategoryByID(categoryID string) (*models.CategoryWithCount, error) {
	category, err := s.getCategory(s.db, categoryID)
	if err != nil {
		return nil, err
	}

	count, err := s.countExpenses(s.db, categoryID)
	if err != nil {
		return nil, err
	}

	return &models.CategoryWithCount{Category: *category, ExpenseCount: count}, nil
}

// UpdateCategory updates a category's name, icon, and color. Empty
// icon/color retain the previous values.
func (s *categoryService) UpdateCategory(categoryID string, input CategoryInput) (*models.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category, err := s.getCategory(s.db, categoryID)
	if err != nil {
		return nil, err
	}

	// Reject a rename that collides with a different category.
	duplicate, err := findByNameInsensitive(s.db, input.Name, categoryID)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, apperrors.ErrDuplicateCategory
	}

	updates := map[string]interface{}{"name": input.Name}
	if input.Icon != "" {
		updates["icon"] = input.Icon
	}
	if input.Color != "" {
		updates["color"] = input.Color
	}

	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicateCategory, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// DeleteCategory removes a category that has no referencing expenses.
// Returns the deleted category so the handler can report its name.
func (s *categoryService) DeleteCategory(categoryID string) (*models.Category, error) {
	category, err := s.getCategory(s.db, categoryID)
	if err != nil {
		return nil, err
	}

	count, err := s.countExpenses(s.db, categoryID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.WithDetails(apperrors.ErrCategoryInUse,
			fmt.Sprintf("Cannot delete category. It has %d associated expenses.", count),
			map[string]interface{}{"expense_count": count})
	}

	if err := s.db.Delete(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// ForceDeleteCategory removes a category and reassigns its expenses to
// the fallback "Other" category, creating it if absent. Reassignment
// and deletion happen in one transaction.
func (s *categoryService) ForceDeleteCategory(categoryID string) (*ForceDeleteResult, error) {
	category, err := s.getCategory(s.db, categoryID)
	if err != nil {
		return nil, err
	}

	// The fallback itself cannot be force-deleted: its expenses would
	// have nowhere to go.
	if strings.EqualFold(category.Name, models.FallbackCategoryName) {
		return nil, apperrors.WithMessage(apperrors.ErrCategoryInUse,
			"Cannot force delete the fallback category")
	}

	var result ForceDeleteResult
	err = s.db.Transaction(func(tx *gorm.DB) error {
		fallback, err := findByNameInsensitive(tx, models.FallbackCategoryName, "")
		if err != nil {
			return err
		}
		if fallback == nil {
			fallback = &models.Category{
				Name:  models.FallbackCategoryName,
				Icon:  models.DefaultCategoryIcon,
				Color: models.DefaultCategoryColor,
			}
			if err := tx.Create(fallback).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		moved := tx.Model(&models.Expense{}).
			Where("category_id = ?", categoryID).
			Update("category_id", fallback.ID)
		if moved.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, moved.Error)
		}

		if err := tx.Delete(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result = ForceDeleteResult{
			DeletedCategory: category.Name,
			MovedToCategory: fallback.Name,
			MovedExpenses:   moved.RowsAffected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// InitializeDefaults seeds the fixed default category set. It is only
// permitted while no categories exist; the whole set is created
// atomically.
func (s *categoryService) InitializeDefaults() ([]models.Category, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithDetails(apperrors.ErrCategoriesExist,
			"Categories already exist. Use bulk create for additional categories.",
			map[string]interface{}{"existing_count": count})
	}

	created := make([]models.Category, len(defaultCategories))
	copy(created, defaultCategories)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range created {
			if err := tx.Create(&created[i]).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.Wrap(apperrors.ErrCategoriesExist, err)
				}
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// getCategory fetches a category by ID or reports CATEGORY_NOT_FOUND.
func (s *categoryService) getCategory(db *gorm.DB, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// countExpenses returns the number of expenses referencing a category.
func (s *categoryService) countExpenses(db *gorm.DB, categoryID string) (int64, error) {
	var count int64
	if err := db.Model(&models.Expense{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}
