package services

import (
	"housing-analyzer/models"
	"housing-analyzer/utils"
)

// Aggregator computes grouped mean prices over the full listing collection.
// It holds no state beyond a logger: every method is a pure function of its
// input slice, so results never depend on call order and the aggregator is
// safe to share across concurrent readers.
type Aggregator struct {
	logger *utils.Logger
}

// NewAggregator creates an Aggregator with the given logger.
func NewAggregator(logger *utils.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// AverageByLocation groups listings by city and returns the mean price per
// city. A city appears in the result only if at least one listing has it,
// so the per-group count is always positive.
func (a *Aggregator) AverageByLocation(listings []*models.Listing) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, l := range listings {
		sums[l.City] += l.Price
		counts[l.City]++
	}

	averages := make(map[string]float64, len(sums))
	for city, sum := range sums {
		averages[city] = sum / float64(counts[city])
	}
	return averages
}

// TrendsByYearAndLocation groups listings by (sale year, city) and returns
// the mean price per leaf group. A pair with no listings is absent from the
// result; callers must not read absence as a zero mean.
func (a *Aggregator) TrendsByYearAndLocation(listings []*models.Listing) map[int]map[string]float64 {
	type group struct {
		sum   float64
		count int
	}
	groups := make(map[int]map[string]*group)

	for _, l := range listings {
		cities, ok := groups[l.SaleYear]
		if !ok {
			cities = make(map[string]*group)
			groups[l.SaleYear] = cities
		}
		g, ok := cities[l.City]
		if !ok {
			g = &group{}
			cities[l.City] = g
		}
		g.sum += l.Price
		g.count++
	}

	trends := make(map[int]map[string]float64, len(groups))
	for year, cities := range groups {
		trends[year] = make(map[string]float64, len(cities))
		for city, g := range cities {
			trends[year][city] = g.sum / float64(g.count)
		}
	}
	return trends
}

// Report computes the overall statistics across the whole dataset.
func (a *Aggregator) Report(listings []*models.Listing) *models.InsightReport {
	report := &models.InsightReport{
		CountByCity: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)
	report.MinPrice = listings[0].Price
	report.MaxPrice = listings[0].Price
	report.MostExpensive = listings[0]

	var total float64
	for _, l := range listings {
		total += l.Price
		if l.Price < report.MinPrice {
			report.MinPrice = l.Price
		}
		if l.Price > report.MaxPrice {
			report.MaxPrice = l.Price
			report.MostExpensive = l
		}
		if l.City != "" {
			report.CountByCity[l.City]++
		}
	}
	report.AveragePrice = total / float64(len(listings))

	return report
}
