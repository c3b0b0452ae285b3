package services

import (
	"strconv"
	"strings"

	"housing-analyzer/models"
	"housing-analyzer/utils"
)

// Cleaner converts RawRecords into validated Listings. Rows that fail
// conversion are logged and dropped so the index and aggregator only ever
// see well-formed data.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean processes raw records and returns validated listings.
func (c *Cleaner) Clean(raw []*models.RawRecord) []*models.Listing {
	seen := utils.NewIDSet()
	result := make([]*models.Listing, 0, len(raw))

	for _, r := range raw {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			c.logger.Warn("[cleaner] Dropping record with empty id (source: %s)", r.SourceFile)
			continue
		}

		if !seen.Add(id) {
			c.logger.Debug("[cleaner] Duplicate id skipped: %s", id)
			continue
		}

		price, err := parsePrice(r.Price)
		if err != nil {
			c.logger.Warn("[cleaner] Dropping %s: bad price %q: %v", id, r.Price, err)
			continue
		}

		bedrooms, err := parseBedrooms(r.Bedrooms)
		if err != nil {
			c.logger.Warn("[cleaner] Dropping %s: bad bedroom count %q: %v", id, r.Bedrooms, err)
			continue
		}

		year, err := parseSaleYear(r.SaleYear)
		if err != nil {
			c.logger.Warn("[cleaner] Dropping %s: bad sale year %q: %v", id, r.SaleYear, err)
			continue
		}

		result = append(result, &models.Listing{
			ID:       id,
			Price:    price,
			Bedrooms: bedrooms,
			City:     normaliseCity(r.City),
			SaleYear: year,
		})
	}

	c.logger.Info("[cleaner] Cleaned %d → %d listings (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// parsePrice parses a decimal price string, tolerating commas and a leading
// currency symbol. Negative prices are rejected.
func parsePrice(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if price < 0 {
		return 0, errNegative
	}
	return price, nil
}

func parseBedrooms(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errNegative
	}
	return n, nil
}

// parseSaleYear accepts a bare year ("2021") or any date string with a
// leading 4-digit year ("2021-06-30").
func parseSaleYear(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if len(s) > 4 {
		s = s[:4]
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if year < 1000 || year > 9999 {
		return 0, errBadYear
	}
	return year, nil
}

// normaliseCity strips surrounding whitespace and collapses internal runs.
func normaliseCity(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
