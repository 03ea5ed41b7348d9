package db

import "database/sql"

// DB wraps the shared *sql.DB handle passed to services.
type DB struct {
	*sql.DB
}
