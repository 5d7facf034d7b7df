package models

// Default display tokens applied when a category is created without them.
const (
	DefaultCategoryIcon  = "category"
	DefaultCategoryColor = "#6B7280"
)

// FallbackCategoryName is the category that absorbs expenses when their
// original category is force-deleted. Matched case-insensitively.
const FallbackCategoryName = "Other"

// Category represents a named expense grouping with a display icon and
// color. Categories are global; name uniqueness is case-insensitive.
type Category struct {
	Base
	Name  string `gorm:"not null" json:"name"`
	Icon  string `gorm:"not null" json:"icon"`
	Color string `gorm:"not null" json:"color"`

	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}

// CategoryWithCount is a category annotated with the number of expenses
// currently referencing it.
type CategoryWithCount struct {
	Category
	ExpenseCount int64 `json:"expense_count"`
}
