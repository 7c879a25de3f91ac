package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/flightseed/internal/network"
	"github.com/tordrt/flightseed/internal/report"
)

// MarkdownFormatter formats a run report as markdown
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// Format writes the report in markdown format
func (f *MarkdownFormatter) Format(r *report.Report) error {
	_, _ = fmt.Fprintln(f.writer, "# Flight Dataset")
	_, _ = fmt.Fprintln(f.writer)

	f.FormatSummary(r)

	if len(r.Routes) > 0 {
		_, _ = fmt.Fprintln(f.writer, "## Key Routes")
		_, _ = fmt.Fprintln(f.writer)
		for _, route := range r.Routes {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %d flights\n", route.Name(), len(route.Flights))
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	if len(r.Sample) > 0 {
		_, _ = fmt.Fprintln(f.writer, "## Sample")
		_, _ = fmt.Fprintln(f.writer)
		f.FormatFlights(r.Sample)
	}

	return nil
}

// FormatSummary writes the generation and storage counts
func (f *MarkdownFormatter) FormatSummary(r *report.Report) {
	_, _ = fmt.Fprintln(f.writer, "## Summary")
	_, _ = fmt.Fprintln(f.writer)

	if r.Skipped {
		_, _ = fmt.Fprintln(f.writer, "- Seeding skipped, the store already had flights")
	}
	if s := r.Generated; s != nil {
		_, _ = fmt.Fprintf(f.writer, "- **Airports:** %d\n", s.Airports)
		_, _ = fmt.Fprintf(f.writer, "- **Generated:** %d flights\n", s.Total)
		_, _ = fmt.Fprintf(f.writer, "- **Direct:** %d\n", s.Direct)
		_, _ = fmt.Fprintf(f.writer, "- **One-stop legs:** %d\n", s.OneStop)
		_, _ = fmt.Fprintf(f.writer, "- **Two-stop legs:** %d\n", s.TwoStop)
		_, _ = fmt.Fprintf(f.writer, "- **Bulk:** %d on %d routes\n", s.Bulk, s.BulkRoutes)
	}
	_, _ = fmt.Fprintf(f.writer, "- **Stored:** %d flights\n", r.Stored)
	_, _ = fmt.Fprintln(f.writer)
}

// FormatFlights writes flights as a markdown table
func (f *MarkdownFormatter) FormatFlights(edges []network.FlightEdge) {
	_, _ = fmt.Fprintln(f.writer, "| Flight | Route | Departs | Arrives | Cost | Duration | Seats free |")
	_, _ = fmt.Fprintln(f.writer, "|---|---|---|---|---|---|---|")
	for _, e := range edges {
		_, _ = fmt.Fprintf(f.writer, "| %s | %s → %s | %s | %s | %.2f | %dmin | %d/%d |\n",
			e.FlightNumber, e.Source, e.Destination,
			e.DepartureTime, e.ArrivalTime, e.Cost, e.Duration,
			e.AvailableSeats, e.Capacity())
	}
	_, _ = fmt.Fprintln(f.writer)
}
