// Package database provides SQLite access for the static rating tables.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DB wraps a SQLite connection holding rating translation tables.
// The tables are read once at startup and never written afterwards, so the
// connection is tuned for read-only lookup workloads.
type DB struct {
	conn *sql.DB
	path string
	name string // Database name for logging
}

// Config holds database configuration
type Config struct {
	Path string // File path; empty means a private in-memory database
	Name string // Friendly name for logging (e.g., "ratings")
}

// New opens a SQLite database for rating table loading.
func New(cfg Config) (*DB, error) {
	path := cfg.Path
	if path == "" {
		// Private in-memory database, populated from the embedded seed.
		// The pool is capped at one connection so the seeded data stays
		// visible for the table scan.
		path = "file::memory:"
	} else if !strings.HasPrefix(path, "file:") {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path to absolute: %w", err)
		}
		path = absPath
	}

	connStr := buildConnectionString(path)

	conn, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Name, err)
	}

	configureConnectionPool(conn)

	// Test connection with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Name, err)
	}

	return &DB{
		conn: conn,
		path: path,
		name: cfg.Name,
	}, nil
}

// buildConnectionString creates the SQLite connection string with PRAGMAs
// appropriate for a load-once lookup table.
func buildConnectionString(path string) string {
	connStr := path
	if strings.Contains(connStr, "?") {
		connStr += "&"
	} else {
		connStr += "?"
	}

	connStr += "_pragma=temp_store(MEMORY)" // Temp tables in RAM
	connStr += "&_pragma=cache_size(-8000)" // 8MB cache (negative = KB)

	return connStr
}

// configureConnectionPool sets up the connection pool. The tables are tiny
// and read exactly once, so a single connection is enough; it also keeps an
// in-memory database alive between the seed script and the table scan.
func configureConnectionPool(conn *sql.DB) {
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying sql.DB connection
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Name returns the database name for logging
func (db *DB) Name() string {
	return db.name
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// ExecScript executes a SQL script (schema plus seed rows) within a single
// transaction. Used to populate an in-memory database from the embedded
// rating tables.
func (db *DB) ExecScript(script string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", db.name, err)
	}

	if _, err := tx.Exec(script); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to execute script for %s: %w", db.name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit script for %s: %w", db.name, err)
	}

	return nil
}

// Query executes a query that returns rows
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

// QueryRow executes a query that returns at most one row
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

// QuickCheck performs a quick health check (just ping)
func (db *DB) QuickCheck(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}
