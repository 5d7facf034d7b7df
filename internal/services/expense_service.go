package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "spendlog/internal/errors"
	"spendlog/internal/models"
)

// expenseService handles expense-related business logic. All lookups
// and mutations are filtered by the owning user.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// validateInput checks the fields shared by create and update.
func (s *expenseService) validateInput(input *ExpenseInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "expense title is required")
	}
	if !input.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
	}
	if input.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "a valid date is required")
	}
	if input.CategoryID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	// The category reference must resolve before anything is persisted.
	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", input.CategoryID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// CreateExpense creates an expense owned by the given user.
func (s *expenseService) CreateExpense(userID string, input ExpenseInput) (*models.Expense, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Title:      input.Title,
		Amount:     input.Amount,
		Date:       input.Date,
		UserID:     userID,
		CategoryID: input.CategoryID,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Preload("Category").First(expense, "id = ?", expense.ID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetUserExpenses returns the user's expenses with their categories,
// most recent first.
func (s *expenseService) GetUserExpenses(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ?", userID).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// UpdateExpense overwrites title, amount, date, and category on an
// expense owned by the given user.
func (s *expenseService) UpdateExpense(userID, expenseID string, input ExpenseInput) (*models.Expense, error) {
	expense, err := s.getOwnedExpense(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       input.Title,
		"amount":      input.Amount,
		"date":        input.Date,
		"category_id": input.CategoryID,
	}
	if err := s.db.Model(expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Preload("Category").First(expense, "id = ?", expense.ID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// DeleteExpense removes an expense owned by the given user.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.getOwnedExpense(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// getOwnedExpense fetches an expense by ID scoped to its owner. A row
// owned by someone else reports EXPENSE_NOT_FOUND rather than
// revealing its existence.
func (s *expenseService) getOwnedExpense(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}
