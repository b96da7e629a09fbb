// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/birthdaybook/internal/models"
)

// Duplicate signals reported by CreateUser and CreateFriend. The store's
// unique constraints are the authoritative duplicate check; callers must not
// pre-query and assume the answer still holds at insert time.
var (
	ErrUsernameTaken   = errors.New("username already used")
	ErrEmailTaken      = errors.New("email already exists")
	ErrFriendnameTaken = errors.New("friendname already exists")
)

// Store defines the interface for birthday-book storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the web layer.
type Store interface {
	// CreateUser persists a new user. Returns ErrUsernameTaken or
	// ErrEmailTaken when the corresponding unique constraint fires.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID. Returns (nil, nil) if not found.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByUsername retrieves a user by login name.
	// Returns (nil, nil) if not found.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UpdateUserPassword replaces the stored password hash for a user.
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error

	// UpdateUserProfile sets the user's own birthday, gift item and price.
	UpdateUserProfile(ctx context.Context, userID, birthday, item, price string) error

	// CreateFriend persists a new friend owned by friend.UserID.
	// Returns ErrFriendnameTaken when the name is already present anywhere
	// in the table (global uniqueness).
	CreateFriend(ctx context.Context, friend *models.Friend) error

	// ListFriends returns a user's friends ordered by birthday descending.
	// A limit <= 0 means no limit.
	ListFriends(ctx context.Context, userID string, limit int) ([]models.Friend, error)

	// ListFriendNames returns the names of a user's friends, for the
	// record-form selection list.
	ListFriendNames(ctx context.Context, userID string) ([]string, error)

	// GetFriendByName retrieves the named friend owned by userID.
	// Returns (nil, nil) if not found.
	GetFriendByName(ctx context.Context, userID, friendname string) (*models.Friend, error)

	// FindFriendsByBirthday returns all friends with exactly the given
	// birthday, across every user. The cross-user scope is longstanding
	// behavior; see DESIGN.md.
	FindFriendsByBirthday(ctx context.Context, birthday string) ([]models.Friend, error)

	// CreateRecord persists a new gift record.
	CreateRecord(ctx context.Context, record *models.GiftRecord) error

	// ListRecords returns a user's gift records ordered by friendname
	// ascending, then age descending.
	ListRecords(ctx context.Context, userID string) ([]models.GiftRecord, error)

	// Close releases any resources held by the store.
	Close() error
}
