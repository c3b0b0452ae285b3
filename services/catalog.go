package services

import (
	"housing-analyzer/index"
	"housing-analyzer/models"
	"housing-analyzer/utils"
)

// Catalog is the composition root for the analysis core: it owns the listing
// collection populated by ingestion and the price index built over it, and it
// enforces the build-before-query workflow.
type Catalog struct {
	logger     *utils.Logger
	listings   []*models.Listing
	priceIndex *index.PriceIndex
	aggregator *Aggregator
	indexed    bool
}

// NewCatalog creates an empty Catalog.
func NewCatalog(logger *utils.Logger) *Catalog {
	return &Catalog{
		logger:     logger,
		priceIndex: index.New(),
		aggregator: NewAggregator(logger),
	}
}

// SetListings hands the cleaned collection to the catalog. Any previously
// built index is invalidated; BuildIndex must run again before querying.
func (c *Catalog) SetListings(listings []*models.Listing) {
	c.listings = listings
	c.indexed = false
}

// Listings returns the owned collection.
func (c *Catalog) Listings() []*models.Listing {
	return c.listings
}

// BuildIndex rebuilds the price index from the full listing collection,
// discarding any previous tree.
func (c *Catalog) BuildIndex() {
	c.priceIndex.Build(c.listings)
	c.indexed = true
	c.logger.Info("[catalog] Price index built — %d listings, tree height %d",
		c.priceIndex.Size(), c.priceIndex.Height())
}

// Query returns all listings priced within [minPrice, maxPrice], ascending
// by price. It fails with ErrInvalidRange unless 0 <= min <= max, and with
// ErrNotIndexed when called before BuildIndex.
func (c *Catalog) Query(minPrice, maxPrice float64) ([]*models.Listing, error) {
	if minPrice < 0 || minPrice > maxPrice {
		return nil, ErrInvalidRange
	}
	if !c.indexed {
		return nil, ErrNotIndexed
	}
	return c.priceIndex.RangeQuery(minPrice, maxPrice), nil
}

// Summaries computes the grouped aggregations over the listing collection.
// The index is not involved; this works before BuildIndex as well.
func (c *Catalog) Summaries() *models.Summary {
	return &models.Summary{
		AverageByCity: c.aggregator.AverageByLocation(c.listings),
		Trends:        c.aggregator.TrendsByYearAndLocation(c.listings),
	}
}

// Report computes the overall dataset statistics.
func (c *Catalog) Report() *models.InsightReport {
	return c.aggregator.Report(c.listings)
}
