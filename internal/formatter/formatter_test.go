package formatter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/flightseed/internal/network"
	"github.com/tordrt/flightseed/internal/report"
)

func testReport() *report.Report {
	edge := network.FlightEdge{
		FlightNumber: "6E1000", Source: "AMD", Destination: "BLR", Cost: 3600, Duration: 150,
		AvailableSeats: 30, BookedSeats: 120, Status: network.StatusScheduled,
		DepartureTime: network.Clock(6, 0), ArrivalTime: network.Clock(8, 30),
	}
	return &report.Report{
		Generated: &network.Summary{Airports: 41, Airlines: 5, Direct: 8, OneStop: 24, TwoStop: 12, Bulk: 900, BulkRoutes: 400, Total: 944},
		Stored:    944,
		Sample:    []network.FlightEdge{edge},
		Routes: []report.Route{
			{Source: "AMD", Destination: "BLR", Flights: []network.FlightEdge{edge}},
			{Source: "BOM", Destination: "BLR"},
		},
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).Format(testReport()))

	out := buf.String()
	assert.Contains(t, out, "GENERATED 944 flights over 41 airports")
	assert.Contains(t, out, "bulk: 900 on 400 routes")
	assert.Contains(t, out, "AMD-BLR: 1 flights")
	assert.Contains(t, out, "BOM-BLR: 0 flights")
	assert.Contains(t, out, "6E1000: AMD->BLR 06:00:00->08:30:00 ₹3600.00 (150min) 30/150 seats free")
}

func TestTextFormatterSkipped(t *testing.T) {
	r := testReport()
	r.Skipped = true
	r.Generated = nil

	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).Format(r))

	assert.Contains(t, buf.String(), "SEED skipped: store already has 944 flights")
	assert.NotContains(t, buf.String(), "GENERATED")
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(&buf).Format(testReport()))

	out := buf.String()
	assert.Contains(t, out, "# Flight Dataset")
	assert.Contains(t, out, "- **Generated:** 944 flights")
	assert.Contains(t, out, "- **AMD-BLR:** 1 flights")
	assert.Contains(t, out, "| 6E1000 | AMD → BLR | 06:00:00 | 08:30:00 | 3600.00 | 150min | 30/150 |")
}

func TestMultiFileFormatter(t *testing.T) {
	for _, format := range []string{"markdown", "text"} {
		t.Run(format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "report")
			require.NoError(t, NewMultiFileFormatter(dir, format).Format(testReport()))

			ext := ".txt"
			if format == "markdown" {
				ext = ".md"
			}
			for _, name := range []string{"_overview", "AMD-BLR", "BOM-BLR"} {
				_, err := os.Stat(filepath.Join(dir, name+ext))
				assert.NoError(t, err, "missing %s%s", name, ext)
			}

			b, err := os.ReadFile(filepath.Join(dir, "AMD-BLR"+ext))
			require.NoError(t, err)
			assert.Contains(t, string(b), "6E1000")
		})
	}
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat("text"))
	assert.True(t, ValidFormat("markdown"))
	assert.False(t, ValidFormat("json"))
}
