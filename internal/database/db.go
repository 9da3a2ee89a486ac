package database

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// DB is a connection pool that knows its SQL dialect. Queries are written
// with PostgreSQL $N placeholders, each used once in ascending order, and
// passed through Rebind.
type DB struct {
	*sql.DB
	Driver string
}

func Open(driver, dsn string) (*DB, error) {
	switch driver {
	case Postgres, SQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == SQLite {
		// One connection: in-memory databases are per connection and
		// SQLite serializes writers anyway.
		db.SetMaxOpenConns(1)
		pragmas := []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA busy_timeout=5000",
			"PRAGMA foreign_keys=ON",
		}
		for _, p := range pragmas {
			if _, err := db.Exec(p); err != nil {
				db.Close()
				return nil, fmt.Errorf("setting pragma %q: %w", p, err)
			}
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, Driver: driver}, nil
}

var placeholder = regexp.MustCompile(`\$\d+`)

// Rebind rewrites $N placeholders for the connection's dialect.
func (d *DB) Rebind(query string) string {
	if d.Driver != SQLite {
		return query
	}
	return placeholder.ReplaceAllString(query, "?")
}
