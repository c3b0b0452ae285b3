package storage

import "housing-analyzer/models"

// RecordSource is the interface any ingestion backend must satisfy.
type RecordSource interface {
	ReadAll() ([]*models.RawRecord, error)
}

// ListingStore is the interface for persisting and reloading cleaned listings.
type ListingStore interface {
	Write(listings []*models.Listing) error
	FetchAll() ([]*models.Listing, error)
	Close() error
}

// ReportSink receives range-query results for rendering.
type ReportSink interface {
	WriteResults(minPrice, maxPrice float64, results []*models.Listing) error
	Close() error
}
