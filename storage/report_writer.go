package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"housing-analyzer/models"
)

// ReportWriter renders a range-query result as a human-readable text file.
type ReportWriter struct {
	file *os.File
	w    *bufio.Writer
}

// NewReportWriter creates (or truncates) the report file at the given path.
// Intermediate directories are created automatically.
func NewReportWriter(path string) (*ReportWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("report: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("report: create file %q: %w", path, err)
	}

	return &ReportWriter{file: f, w: bufio.NewWriter(f)}, nil
}

// WriteResults writes the query bounds and one line per matched listing.
func (r *ReportWriter) WriteResults(minPrice, maxPrice float64, results []*models.Listing) error {
	if _, err := fmt.Fprintf(r.w, "Properties between $%.2f and $%.2f:\n\n", minPrice, maxPrice); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	if len(results) == 0 {
		if _, err := fmt.Fprintln(r.w, "No properties found in the specified price range."); err != nil {
			return fmt.Errorf("report: write body: %w", err)
		}
		return nil
	}

	for _, l := range results {
		_, err := fmt.Fprintf(r.w, "ID: %s, Price: $%.2f, Bedrooms: %d, Location: %s, Sale Year: %d\n",
			l.ID, l.Price, l.Bedrooms, l.City, l.SaleYear)
		if err != nil {
			return fmt.Errorf("report: write row: %w", err)
		}
	}
	return nil
}

// Close flushes and closes the underlying file.
func (r *ReportWriter) Close() error {
	if err := r.w.Flush(); err != nil {
		_ = r.file.Close()
		return fmt.Errorf("report: flush: %w", err)
	}
	return r.file.Close()
}
