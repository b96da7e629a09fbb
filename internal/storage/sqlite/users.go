package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/birthdaybook/internal/models"
	"github.com/mmynk/birthdaybook/internal/storage"
)

// CreateUser inserts a new user into the database.
// The username and email unique constraints are the authoritative duplicate
// check; violations surface as storage.ErrUsernameTaken / ErrEmailTaken.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, birthday, item, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Birthday,
		user.Item,
		user.Price,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "users.username") {
			return storage.ErrUsernameTaken
		}
		if isUniqueViolation(err, "users.email") {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id", id)
}

// GetUserByUsername retrieves a user by their login name.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx, "username", username)
}

func (s *SQLiteStore) getUser(ctx context.Context, column, value string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash, birthday, item, price, created_at
		FROM users
		WHERE %s = ?
	`, column)

	user := &models.User{}
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Birthday,
		&user.Item,
		&user.Price,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return user, nil
}

// UpdateUserPassword replaces the stored password hash for a user.
func (s *SQLiteStore) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE users SET password_hash = ? WHERE id = ?",
		passwordHash, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check password update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}

	return nil
}

// UpdateUserProfile sets the user's own birthday, gift item and price.
func (s *SQLiteStore) UpdateUserProfile(ctx context.Context, userID, birthday, item, price string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE users SET birthday = ?, item = ?, price = ? WHERE id = ?",
		birthday, item, price, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check profile update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}

	return nil
}
