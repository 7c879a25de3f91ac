package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const mysqlSchema = `
	CREATE TABLE IF NOT EXISTS flights (
		flight_id CHAR(36) PRIMARY KEY,
		flight_number VARCHAR(20) NOT NULL,
		source VARCHAR(10) NOT NULL,
		destination VARCHAR(10) NOT NULL,
		cost DECIMAL(10,2) NOT NULL,
		duration INT NOT NULL,
		available_seats INT NOT NULL,
		booked_seats INT NOT NULL,
		flight_status VARCHAR(20) NOT NULL,
		departure_time TIME NOT NULL,
		arrival_time TIME NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_flights_route (source, destination)
	)
`

// MySQLClient manages the connection to MySQL
type MySQLClient struct {
	sqlStore
}

// NewMySQLClient creates a new MySQL client
func NewMySQLClient(ctx context.Context, connString string) (*MySQLClient, error) {
	db, err := sql.Open("mysql", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &MySQLClient{sqlStore{db: db, schema: mysqlSchema}}, nil
}

// Close closes the database connection
func (c *MySQLClient) Close() error {
	return c.db.Close()
}

// GetDB returns the underlying database connection
func (c *MySQLClient) GetDB() *sql.DB {
	return c.db
}
