package db

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/jszwec/csvutil"

	"github.com/tordrt/flightseed/internal/network"
)

// CSVFile stores flights in a single CSV file with a header row
type CSVFile struct {
	path string
}

// NewCSVFile returns a sink backed by the file at path. The file is created
// on the first write.
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

// Path returns the file location
func (c *CSVFile) Path() string { return c.path }

// EnsureSchema creates the parent directory
func (c *CSVFile) EnsureSchema(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Count returns the number of rows in the file, 0 if it does not exist
func (c *CSVFile) Count(ctx context.Context) (int64, error) {
	edges, err := c.readAll()
	if err != nil {
		return 0, err
	}
	return int64(len(edges)), nil
}

// WriteBatch writes edges to a temporary file and renames it into place
func (c *CSVFile) WriteBatch(ctx context.Context, edges []network.FlightEdge) error {
	if len(edges) == 0 {
		return ErrEmptyBatch
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".flights-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := EncodeCSV(tmp, edges); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("failed to move flights file into place: %w", err)
	}
	return nil
}

// Sample returns up to limit flights ordered by flight number
func (c *CSVFile) Sample(ctx context.Context, limit int) ([]network.FlightEdge, error) {
	edges, err := c.readAll()
	if err != nil {
		return nil, err
	}
	sortByFlightNumber(edges)
	if limit >= 0 && len(edges) > limit {
		edges = edges[:limit]
	}
	return edges, nil
}

// RouteFlights returns the flights from src to dst
func (c *CSVFile) RouteFlights(ctx context.Context, src, dst string) ([]network.FlightEdge, error) {
	edges, err := c.readAll()
	if err != nil {
		return nil, err
	}

	var out []network.FlightEdge
	for _, e := range edges {
		if e.Source == src && e.Destination == dst {
			out = append(out, e)
		}
	}
	sortByFlightNumber(out)
	return out, nil
}

// Close is a no-op; the file is only open while reading or writing
func (c *CSVFile) Close() error { return nil }

func (c *CSVFile) readAll() ([]network.FlightEdge, error) {
	f, err := os.Open(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open flights file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeCSV(f)
}

// EncodeCSV writes edges with a header row
func EncodeCSV(w io.Writer, edges []network.FlightEdge) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	// costs are stored with two fractional digits, like DECIMAL(10,2)
	enc.Register(func(f float64) ([]byte, error) {
		return strconv.AppendFloat(nil, f, 'f', 2, 64), nil
	})
	if err := enc.Encode(edges); err != nil {
		return fmt.Errorf("failed to encode flights: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write flights: %w", err)
	}
	return nil
}

// DecodeCSV reads edges written by EncodeCSV. An empty input yields no edges.
func DecodeCSV(r io.Reader) ([]network.FlightEdge, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read flights header: %w", err)
	}

	var edges []network.FlightEdge
	if err := dec.Decode(&edges); err != nil {
		return nil, fmt.Errorf("failed to decode flights: %w", err)
	}
	for i := range edges {
		edges[i].Airline = airlineOf(edges[i].FlightNumber)
	}
	return edges, nil
}

func sortByFlightNumber(edges []network.FlightEdge) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].FlightNumber < edges[j].FlightNumber
	})
}
