package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS flights (
		flight_id TEXT PRIMARY KEY,
		flight_number TEXT NOT NULL,
		source TEXT NOT NULL,
		destination TEXT NOT NULL,
		cost DECIMAL(10,2) NOT NULL,
		duration INTEGER NOT NULL,
		available_seats INTEGER NOT NULL,
		booked_seats INTEGER NOT NULL,
		flight_status TEXT NOT NULL,
		departure_time TEXT NOT NULL,
		arrival_time TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_flights_route ON flights (source, destination);
`

// SQLiteClient manages the connection to SQLite
type SQLiteClient struct {
	sqlStore
}

// NewSQLiteClient creates a new SQLite client
func NewSQLiteClient(ctx context.Context, path string) (*SQLiteClient, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single writer keeps the batch transaction on one connection
	db.SetMaxOpenConns(1)

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteClient{sqlStore{db: db, schema: sqliteSchema}}, nil
}

// Close closes the database connection
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// GetDB returns the underlying database connection
func (c *SQLiteClient) GetDB() *sql.DB {
	return c.db
}
