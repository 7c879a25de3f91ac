package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tordrt/flightseed/internal/network"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS flights (
		flight_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		flight_number VARCHAR(20) NOT NULL,
		source VARCHAR(10) NOT NULL,
		destination VARCHAR(10) NOT NULL,
		cost DECIMAL(10,2) NOT NULL,
		duration INTEGER NOT NULL,
		available_seats INTEGER NOT NULL,
		booked_seats INTEGER NOT NULL,
		flight_status VARCHAR(20) NOT NULL,
		departure_time TIME NOT NULL,
		arrival_time TIME NOT NULL,
		created_at TIMESTAMP DEFAULT NOW(),
		updated_at TIMESTAMP DEFAULT NOW()
	)
`

// PostgresClient manages the connection to PostgreSQL
type PostgresClient struct {
	conn *pgx.Conn
}

// NewPostgresClient creates a new PostgreSQL client
func NewPostgresClient(ctx context.Context, connString string) (*PostgresClient, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresClient{conn: conn}, nil
}

// Close closes the database connection
func (c *PostgresClient) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.conn.Close(ctx)
}

// GetConnection returns the underlying connection
func (c *PostgresClient) GetConnection() *pgx.Conn {
	return c.conn
}

// EnsureSchema creates the flights table
func (c *PostgresClient) EnsureSchema(ctx context.Context) error {
	if _, err := c.conn.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create flights table: %w", err)
	}
	return nil
}

// Count returns the number of stored flights
func (c *PostgresClient) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := c.conn.QueryRow(ctx, `SELECT COUNT(*) FROM flights`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count flights: %w", err)
	}
	return n, nil
}

// WriteBatch copies all edges in a single transaction
func (c *PostgresClient) WriteBatch(ctx context.Context, edges []network.FlightEdge) error {
	if len(edges) == 0 {
		return ErrEmptyBatch
	}

	tx, err := c.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	columns := []string{
		"flight_number", "source", "destination", "cost", "duration",
		"available_seats", "booked_seats", "flight_status", "departure_time", "arrival_time",
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"flights"}, columns,
		pgx.CopyFromSlice(len(edges), func(i int) ([]any, error) {
			e := edges[i]
			return []any{
				e.FlightNumber, e.Source, e.Destination, e.Cost, e.Duration,
				e.AvailableSeats, e.BookedSeats, e.Status,
				pgTime(e.DepartureTime), pgTime(e.ArrivalTime),
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy flights: %w", err)
	}
	if int(n) != len(edges) {
		return fmt.Errorf("copied %d of %d flights", n, len(edges))
	}

	return tx.Commit(ctx)
}

// Sample returns the first limit flights by flight number
func (c *PostgresClient) Sample(ctx context.Context, limit int) ([]network.FlightEdge, error) {
	return c.query(ctx, `
		SELECT `+postgresSelect+`
		FROM flights
		ORDER BY flight_number
		LIMIT $1
	`, limit)
}

// RouteFlights returns all flights from src to dst
func (c *PostgresClient) RouteFlights(ctx context.Context, src, dst string) ([]network.FlightEdge, error) {
	return c.query(ctx, `
		SELECT `+postgresSelect+`
		FROM flights
		WHERE source = $1 AND destination = $2
		ORDER BY flight_number
	`, src, dst)
}

const postgresSelect = `flight_number, source, destination, cost::float8, duration,
	available_seats, booked_seats, flight_status,
	to_char(departure_time, 'HH24:MI:SS'), to_char(arrival_time, 'HH24:MI:SS')`

func (c *PostgresClient) query(ctx context.Context, query string, args ...any) ([]network.FlightEdge, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var edges []network.FlightEdge
	for rows.Next() {
		e, err := scanEdge(rows)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, rows.Err()
}

func pgTime(t network.TimeOfDay) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64(t.Minutes()) * int64(time.Minute/time.Microsecond),
		Valid:        true,
	}
}
