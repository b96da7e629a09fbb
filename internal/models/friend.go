package models

// Friend represents one tracked birthday, owned by a user.
//
// Friend names are unique across the whole table, not per owner. Two users
// cannot both track an "Alice". That matches the behavior this app has always
// had; see DESIGN.md before "fixing" it.
type Friend struct {
	// ID is the unique identifier for the friend (UUID format).
	ID string

	// UserID is the owning user's ID.
	UserID string

	// Friendname is the display name, unique table-wide.
	Friendname string

	// Birthday is the friend's birthday in ISO form ("2006-01-02").
	Birthday string

	// Age is the friend's current age, computed at render time.
	// Never persisted.
	Age int
}
