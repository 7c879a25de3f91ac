package formatter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tordrt/flightseed/internal/report"
)

const (
	formatMarkdown = "markdown"
	formatText     = "text"
)

// MultiFileFormatter writes a report to a directory: an overview file plus
// one file per designated route
type MultiFileFormatter struct {
	OutputDir    string
	OutputFormat string // "text" or "markdown"
}

// NewMultiFileFormatter creates a new multi-file formatter
func NewMultiFileFormatter(outputDir, format string) *MultiFileFormatter {
	return &MultiFileFormatter{
		OutputDir:    outputDir,
		OutputFormat: format,
	}
}

// Format writes the report to multiple files
func (f *MultiFileFormatter) Format(r *report.Report) error {
	// Create output directory if it doesn't exist
	if err := os.MkdirAll(f.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := f.writeOverview(r); err != nil {
		return fmt.Errorf("failed to write overview: %w", err)
	}

	for _, route := range r.Routes {
		if err := f.writeRouteFile(route); err != nil {
			return fmt.Errorf("failed to write route file for %s: %w", route.Name(), err)
		}
	}

	return nil
}

func (f *MultiFileFormatter) writeOverview(r *report.Report) error {
	filename := filepath.Join(f.OutputDir, "_overview"+f.getFileExtension())

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if f.OutputFormat == formatMarkdown {
		md := NewMarkdownFormatter(file)
		_, _ = fmt.Fprintf(file, "# Flight Dataset Overview\n\n")
		_, _ = fmt.Fprintf(file, "Each key route has a corresponding file: `<SRC>-<DST>%s`\n\n", f.getFileExtension())
		md.FormatSummary(r)
		if len(r.Sample) > 0 {
			_, _ = fmt.Fprintf(file, "## Sample\n\n")
			md.FormatFlights(r.Sample)
		}
		return nil
	}

	_, _ = fmt.Fprintf(file, "DATASET OVERVIEW\n")
	_, _ = fmt.Fprintf(file, "Each key route has a file: <SRC>-<DST>%s\n\n", f.getFileExtension())
	return NewTextFormatter(file).Format(r)
}

// writeRouteFile lists every stored flight on one route
func (f *MultiFileFormatter) writeRouteFile(route report.Route) error {
	filename := filepath.Join(f.OutputDir, route.Name()+f.getFileExtension())

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if f.OutputFormat == formatMarkdown {
		_, _ = fmt.Fprintf(file, "## %s → %s\n\n", route.Source, route.Destination)
		if len(route.Flights) == 0 {
			_, _ = fmt.Fprintf(file, "No direct flights.\n")
			return nil
		}
		NewMarkdownFormatter(file).FormatFlights(route.Flights)
		return nil
	}

	_, _ = fmt.Fprintf(file, "ROUTE %s (%d flights)\n", route.Name(), len(route.Flights))
	for _, e := range route.Flights {
		_, _ = fmt.Fprintf(file, "  %s\n", formatEdge(e))
	}
	return nil
}

func (f *MultiFileFormatter) getFileExtension() string {
	if f.OutputFormat == formatMarkdown {
		return ".md"
	}
	return ".txt"
}

// ValidFormat reports whether format names a supported output format
func ValidFormat(format string) bool {
	return format == formatText || format == formatMarkdown
}
