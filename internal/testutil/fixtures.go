package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendlog/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:  name,
		Icon:  models.DefaultCategoryIcon,
		Color: models.DefaultCategoryColor,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense for the given user and category.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, categoryID string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Title:      fmt.Sprintf("Test Expense %d", nextID()),
		Amount:     decimal.NewFromFloat(42.50),
		Date:       time.Now().Truncate(24 * time.Hour),
		UserID:     userID,
		CategoryID: categoryID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
