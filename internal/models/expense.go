package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single monetary transaction owned by a user and
// tagged with a category. Both references are mandatory.
type Expense struct {
	Base
	Title      string          `gorm:"not null" json:"title"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date       time.Time       `gorm:"not null;index" json:"date"`
	UserID     string          `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID string          `gorm:"type:uuid;not null;index" json:"category_id"`

	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
