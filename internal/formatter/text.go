package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/flightseed/internal/network"
	"github.com/tordrt/flightseed/internal/report"
)

// TextFormatter formats a run report as compact text
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// Format writes the report in compact text format
func (f *TextFormatter) Format(r *report.Report) error {
	if r.Skipped {
		_, _ = fmt.Fprintf(f.writer, "SEED skipped: store already has %d flights\n", r.Stored)
	} else if r.Generated != nil {
		f.formatSummary(r.Generated)
	}

	if len(r.Routes) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "KEY ROUTES")
		for _, route := range r.Routes {
			_, _ = fmt.Fprintf(f.writer, "  %s: %d flights\n", route.Name(), len(route.Flights))
		}
	}

	_, _ = fmt.Fprintln(f.writer)
	_, _ = fmt.Fprintf(f.writer, "STORED %d flights\n", r.Stored)
	for _, e := range r.Sample {
		_, _ = fmt.Fprintf(f.writer, "  %s\n", formatEdge(e))
	}

	return nil
}

func (f *TextFormatter) formatSummary(s *network.Summary) {
	_, _ = fmt.Fprintf(f.writer, "GENERATED %d flights over %d airports\n", s.Total, s.Airports)
	_, _ = fmt.Fprintf(f.writer, "  direct: %d\n", s.Direct)
	_, _ = fmt.Fprintf(f.writer, "  one-stop legs: %d\n", s.OneStop)
	_, _ = fmt.Fprintf(f.writer, "  two-stop legs: %d\n", s.TwoStop)
	_, _ = fmt.Fprintf(f.writer, "  bulk: %d on %d routes\n", s.Bulk, s.BulkRoutes)
}

// formatEdge renders one flight on a single line
func formatEdge(e network.FlightEdge) string {
	return fmt.Sprintf("%s: %s->%s %s->%s ₹%.2f (%dmin) %d/%d seats free",
		e.FlightNumber, e.Source, e.Destination,
		e.DepartureTime, e.ArrivalTime, e.Cost, e.Duration,
		e.AvailableSeats, e.Capacity())
}
