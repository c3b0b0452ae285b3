package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"housing-analyzer/models"
)

// Source dataset column names.
const (
	colID       = "zpid"
	colPrice    = "latestPrice"
	colBedrooms = "numOfBedrooms"
	colCity     = "city"
	colSaleYear = "latest_saleyear"
)

// CSVReader loads raw housing records from a header-mapped CSV file. Columns
// are looked up by header name, so their order in the file does not matter.
type CSVReader struct {
	path string
}

// NewCSVReader creates a reader for the CSV file at the given path.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// ReadAll parses the whole file and returns one RawRecord per data row.
// Rows shorter than the header are skipped by the csv package's field-count
// check and surface as an error.
func (r *CSVReader) ReadAll() ([]*models.RawRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header of %q: %w", r.path, err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, fmt.Errorf("csv: %q: %w", r.path, err)
	}

	var records []*models.RawRecord
	loadedAt := time.Now()
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row in %q: %w", r.path, err)
		}

		records = append(records, &models.RawRecord{
			ID:         row[cols[colID]],
			Price:      row[cols[colPrice]],
			Bedrooms:   row[cols[colBedrooms]],
			City:       row[cols[colCity]],
			SaleYear:   row[cols[colSaleYear]],
			SourceFile: r.path,
			LoadedAt:   loadedAt,
		})
	}

	return records, nil
}

// mapColumns resolves each required column name to its index in the header.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	for _, required := range []string{colID, colPrice, colBedrooms, colCity, colSaleYear} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return cols, nil
}
