package services

import (
	"time"

	"github.com/shopspring/decimal"

	"spendlog/internal/models"
)

// ProfileUpdate holds the optional profile fields for a partial update.
// Empty fields are left unchanged.
type ProfileUpdate struct {
	Name           string
	Email          string
	Password       string
	ProfilePicture string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*models.User, error)
}

// CategoryInput holds the fields for creating a category. Icon and
// color fall back to fixed defaults when empty.
type CategoryInput struct {
	Name  string
	Icon  string
	Color string
}

// ForceDeleteResult reports the outcome of a force delete: the name of
// the removed category, the fallback that absorbed its expenses, and
// how many expenses were moved.
type ForceDeleteResult struct {
	DeletedCategory string `json:"deleted_category"`
	MovedToCategory string `json:"moved_to_category"`
	MovedExpenses   int64  `json:"moved_expenses"`
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(input CategoryInput) (*models.Category, error)
	BulkCreateCategories(inputs []CategoryInput) ([]models.Category, error)
	ListCategories() ([]models.CategoryWithCount, error)
	GetCategoryByID(categoryID string) (*models.CategoryWithCount, error)
	UpdateCategory(categoryID string, input CategoryInput) (*models.Category, error)
	DeleteCategory(categoryID string) (*models.Category, error)
	ForceDeleteCategory(categoryID string) (*ForceDeleteResult, error)
	InitializeDefaults() ([]models.Category, error)
}

// ExpenseInput holds the fields for creating or overwriting an expense.
type ExpenseInput struct {
	Title      string
	Amount     decimal.Decimal
	Date       time.Time
	CategoryID string
}

// ExpenseServicer defines the contract for expense-related business logic.
// Every operation is scoped to the owning user.
type ExpenseServicer interface {
	CreateExpense(userID string, input ExpenseInput) (*models.Expense, error)
	GetUserExpenses(userID string) ([]models.Expense, error)
	UpdateExpense(userID, expenseID string, input ExpenseInput) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
}
