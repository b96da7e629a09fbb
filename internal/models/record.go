package models

// GiftRecord represents one gift given to a friend.
//
// Friendname is free text rather than a foreign key: records outlive any
// future friend bookkeeping and keep the name as entered.
type GiftRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string

	// UserID is the owning user's ID.
	UserID string

	// Friendname is the recipient's name as entered on the record form.
	Friendname string

	// Age is the friend's age at the time the gift was given.
	Age int

	// Item is what was given.
	Item string

	// Price is what it cost, as entered.
	Price string

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64
}
