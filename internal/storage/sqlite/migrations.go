package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Uniqueness of users.username, users.email and friends.friendname is
// enforced here rather than by application-level pre-checks, so a concurrent
// double submit cannot slip past a check-then-insert window. Note that the
// friendname constraint is table-wide, not per owner.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    birthday TEXT NOT NULL DEFAULT '',
    item TEXT NOT NULL DEFAULT '',
    price TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS friends (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    friendname TEXT NOT NULL UNIQUE,
    birthday TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS records (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    friendname TEXT NOT NULL,
    age INTEGER NOT NULL,
    item TEXT NOT NULL,
    price TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_friends_user_id ON friends(user_id);
CREATE INDEX IF NOT EXISTS idx_friends_birthday ON friends(birthday);
CREATE INDEX IF NOT EXISTS idx_records_user_id ON records(user_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
