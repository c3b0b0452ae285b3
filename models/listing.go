package models

import "time"

// RawRecord holds one unconverted row from a source dataset file.
// Fields stay as strings until the cleaner validates them.
type RawRecord struct {
	ID         string
	Price      string
	Bedrooms   string
	City       string
	SaleYear   string
	SourceFile string
	LoadedAt   time.Time
}

// Listing is the cleaned, validated property record the core indexes
// and aggregates. It is never mutated after the cleaner produces it.
type Listing struct {
	ID       string
	Price    float64
	Bedrooms int
	City     string
	SaleYear int
}

// Summary bundles the grouped aggregations handed to the presentation layer.
type Summary struct {
	// AverageByCity maps city -> arithmetic mean price over that city's listings.
	AverageByCity map[string]float64
	// Trends maps sale year -> city -> mean price. A (year, city) pair with no
	// listings is absent from the inner map, which is not the same as a zero mean.
	Trends map[int]map[string]float64
}

// InsightReport holds the overall statistics computed across the whole dataset.
type InsightReport struct {
	TotalListings int
	MinPrice      float64
	MaxPrice      float64
	AveragePrice  float64
	MostExpensive *Listing
	CountByCity   map[string]int
}
