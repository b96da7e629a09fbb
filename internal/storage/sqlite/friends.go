package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/birthdaybook/internal/models"
	"github.com/mmynk/birthdaybook/internal/storage"
)

// CreateFriend inserts a new friend owned by friend.UserID.
// The table-wide friendname unique constraint is the authoritative duplicate
// check; a violation surfaces as storage.ErrFriendnameTaken.
func (s *SQLiteStore) CreateFriend(ctx context.Context, friend *models.Friend) error {
	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO friends (id, user_id, friendname, birthday) VALUES (?, ?, ?, ?)",
		friend.ID, friend.UserID, friend.Friendname, friend.Birthday,
	)
	if err != nil {
		if isUniqueViolation(err, "friends.friendname") {
			return storage.ErrFriendnameTaken
		}
		return fmt.Errorf("failed to create friend: %w", err)
	}

	return nil
}

// ListFriends returns a user's friends ordered by birthday descending.
// A limit <= 0 means no limit.
func (s *SQLiteStore) ListFriends(ctx context.Context, userID string, limit int) ([]models.Friend, error) {
	query := "SELECT id, user_id, friendname, birthday FROM friends WHERE user_id = ? ORDER BY birthday DESC"
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	return scanFriends(rows)
}

// ListFriendNames returns the names of a user's friends.
func (s *SQLiteStore) ListFriendNames(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT friendname FROM friends WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list friend names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan friend name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friend names: %w", err)
	}

	return names, nil
}

// GetFriendByName retrieves the named friend owned by userID.
func (s *SQLiteStore) GetFriendByName(ctx context.Context, userID, friendname string) (*models.Friend, error) {
	friend := &models.Friend{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, friendname, birthday FROM friends WHERE user_id = ? AND friendname = ?",
		userID, friendname,
	).Scan(&friend.ID, &friend.UserID, &friend.Friendname, &friend.Birthday)

	if err == sql.ErrNoRows {
		return nil, nil // Friend not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}

	return friend, nil
}

// FindFriendsByBirthday returns all friends with exactly the given birthday,
// across every user.
func (s *SQLiteStore) FindFriendsByBirthday(ctx context.Context, birthday string) ([]models.Friend, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, friendname, birthday FROM friends WHERE birthday = ?",
		birthday,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find friends by birthday: %w", err)
	}
	defer rows.Close()

	return scanFriends(rows)
}

func scanFriends(rows *sql.Rows) ([]models.Friend, error) {
	var friends []models.Friend
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(&f.ID, &f.UserID, &f.Friendname, &f.Birthday); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}
	return friends, nil
}
