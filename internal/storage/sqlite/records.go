package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/birthdaybook/internal/models"
)

// CreateRecord persists a new gift record, generating an ID and creation
// timestamp when unset.
func (s *SQLiteStore) CreateRecord(ctx context.Context, record *models.GiftRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt == 0 {
		record.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO records (id, user_id, friendname, age, item, price, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		record.ID, record.UserID, record.Friendname, record.Age, record.Item, record.Price, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	return nil
}

// ListRecords returns a user's gift records ordered by friendname ascending,
// then age descending.
func (s *SQLiteStore) ListRecords(ctx context.Context, userID string) ([]models.GiftRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, friendname, age, item, price, created_at FROM records WHERE user_id = ? ORDER BY friendname, age DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []models.GiftRecord
	for rows.Next() {
		var r models.GiftRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.Friendname, &r.Age, &r.Item, &r.Price, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}
