// Package db persists generated flight networks.
//
// Every store implements Sink. SQL stores share the flights table layout:
// flight_number, source, destination, cost, duration, available_seats,
// booked_seats, flight_status, departure_time, arrival_time.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/tordrt/flightseed/internal/network"
)

// ErrEmptyBatch is returned when WriteBatch is called with no edges
var ErrEmptyBatch = errors.New("empty batch")

// Sink is a store that accepts one generated network
type Sink interface {
	// EnsureSchema creates the flights table if it does not exist
	EnsureSchema(ctx context.Context) error
	// Count returns the number of stored flights
	Count(ctx context.Context) (int64, error)
	// WriteBatch stores edges atomically: all of them or none
	WriteBatch(ctx context.Context, edges []network.FlightEdge) error
	// Sample returns up to limit flights ordered by flight number
	Sample(ctx context.Context, limit int) ([]network.FlightEdge, error)
	// RouteFlights returns the flights from src to dst ordered by flight number
	RouteFlights(ctx context.Context, src, dst string) ([]network.FlightEdge, error)
	Close() error
}

const flightColumns = `flight_number, source, destination, cost, duration,
	available_seats, booked_seats, flight_status, departure_time, arrival_time`

// rowScanner is satisfied by pgx.Rows and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEdge reads one row selected with flightColumns; times are read as text
func scanEdge(row rowScanner) (network.FlightEdge, error) {
	var (
		e        network.FlightEdge
		dep, arr string
	)
	if err := row.Scan(
		&e.FlightNumber, &e.Source, &e.Destination, &e.Cost, &e.Duration,
		&e.AvailableSeats, &e.BookedSeats, &e.Status, &dep, &arr,
	); err != nil {
		return e, fmt.Errorf("failed to scan flight: %w", err)
	}

	var err error
	if e.DepartureTime, err = network.ParseTimeOfDay(dep); err != nil {
		return e, err
	}
	if e.ArrivalTime, err = network.ParseTimeOfDay(arr); err != nil {
		return e, err
	}
	e.Airline = airlineOf(e.FlightNumber)
	return e, nil
}

// airlineOf strips the sequence digits from a flight number
func airlineOf(flightNumber string) string {
	i := len(flightNumber)
	for i > 0 && flightNumber[i-1] >= '0' && flightNumber[i-1] <= '9' {
		i--
	}
	// codes like 6E start with a digit; keep at least two characters
	if i < 2 && len(flightNumber) >= 2 {
		i = 2
	}
	return flightNumber[:i]
}

var (
	_ Sink = (*PostgresClient)(nil)
	_ Sink = (*MySQLClient)(nil)
	_ Sink = (*SQLiteClient)(nil)
	_ Sink = (*CSVFile)(nil)
)
