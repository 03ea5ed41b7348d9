package db

import (
	"context"
	"database/sql"
)

const keystoneMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    username text NOT NULL,
    email text NOT NULL,
    password_hash text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique
ON users (LOWER(email));

CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_unique
ON users (LOWER(username));

CREATE TABLE IF NOT EXISTS climbing_sessions (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id uuid NOT NULL REFERENCES users(id),
    session_date date NOT NULL,
    location text NOT NULL,
    route_grade text NOT NULL,
    duration_minutes integer NOT NULL CHECK (duration_minutes > 0),
    notes text,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS climbing_sessions_user_date_idx
ON climbing_sessions (user_id, session_date DESC);
`

// RunKeystoneMigration creates the schema idempotently at startup.
// Duplicate registration is enforced here, by the unique indexes, so two
// concurrent registrations for one email can never both commit.
func RunKeystoneMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, keystoneMigration)
	return err
}
