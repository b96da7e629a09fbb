package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique login name.
	Username string

	// Email is the user's email address (unique).
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// Birthday is the user's own birthday in ISO form ("2006-01-02").
	// Empty until the user fills in their settings page.
	Birthday string

	// Item is the user's default gift wish. Empty until set via settings.
	Item string

	// Price is the user's default gift budget. Empty until set via settings.
	Price string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a user with a fresh ID and creation timestamp.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// HasProfile reports whether the user has filled in all settings fields.
func (u *User) HasProfile() bool {
	return u.Birthday != "" && u.Item != "" && u.Price != ""
}
