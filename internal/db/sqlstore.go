package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tordrt/flightseed/internal/network"
)

// sqlStore implements Sink over database/sql for drivers that use ?
// placeholders (MySQL and SQLite)
type sqlStore struct {
	db     *sql.DB
	schema string
}

func (s *sqlStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.schema); err != nil {
		return fmt.Errorf("failed to create flights table: %w", err)
	}
	return nil
}

func (s *sqlStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flights`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count flights: %w", err)
	}
	return n, nil
}

func (s *sqlStore) WriteBatch(ctx context.Context, edges []network.FlightEdge) error {
	if len(edges) == 0 {
		return ErrEmptyBatch
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO flights (flight_id, `+flightColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range edges {
		if _, err := stmt.ExecContext(ctx,
			uuid.NewString(), e.FlightNumber, e.Source, e.Destination, e.Cost, e.Duration,
			e.AvailableSeats, e.BookedSeats, e.Status,
			e.DepartureTime.String(), e.ArrivalTime.String(),
		); err != nil {
			return fmt.Errorf("failed to insert flight %s: %w", e.FlightNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit flights: %w", err)
	}
	return nil
}

func (s *sqlStore) Sample(ctx context.Context, limit int) ([]network.FlightEdge, error) {
	return s.query(ctx, `
		SELECT `+flightColumns+`
		FROM flights
		ORDER BY flight_number
		LIMIT ?
	`, limit)
}

func (s *sqlStore) RouteFlights(ctx context.Context, src, dst string) ([]network.FlightEdge, error) {
	return s.query(ctx, `
		SELECT `+flightColumns+`
		FROM flights
		WHERE source = ? AND destination = ?
		ORDER BY flight_number
	`, src, dst)
}

func (s *sqlStore) query(ctx context.Context, query string, args ...any) ([]network.FlightEdge, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer func() { _ = rows.Close() }()

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
