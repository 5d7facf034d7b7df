package models

// User represents the user model in the database. Email is unique and
// stored exactly as supplied; the password column holds a bcrypt hash
// and is never serialized.
type User struct {
	Base
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Expenses       []Expense `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}
