package services

import (
	"errors"
	"testing"

	"housing-analyzer/models"
	"housing-analyzer/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger(utils.LevelError) }

func scenarioListings() []*models.Listing {
	return []*models.Listing{
		{ID: "1", Price: 100, City: "A", SaleYear: 2020},
		{ID: "2", Price: 300, City: "B", SaleYear: 2020},
		{ID: "3", Price: 200, City: "A", SaleYear: 2021},
	}
}

func TestCatalogQueryScenario(t *testing.T) {
	c := NewCatalog(newTestLogger())
	c.SetListings(scenarioListings())
	c.BuildIndex()

	results, err := c.Query(150, 300)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ID != "3" || results[1].ID != "2" {
		t.Errorf("order: got [%s %s], want [3 2]", results[0].ID, results[1].ID)
	}
}

func TestCatalogQueryBeforeBuild(t *testing.T) {
	c := NewCatalog(newTestLogger())
	c.SetListings(scenarioListings())

	if _, err := c.Query(0, 1000); !errors.Is(err, ErrNotIndexed) {
		t.Errorf("query before build: got %v, want ErrNotIndexed", err)
	}
}

func TestCatalogQueryInvalidRange(t *testing.T) {
	c := NewCatalog(newTestLogger())
	c.SetListings(scenarioListings())
	c.BuildIndex()

	tests := []struct {
		name     string
		min, max float64
	}{
		{"min greater than max", 300, 100},
		{"negative min", -1, 100},
	}

	for _, tt := range tests {
		if _, err := c.Query(tt.min, tt.max); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("%s: got %v, want ErrInvalidRange", tt.name, err)
		}
	}
}

func TestCatalogInvalidRangeBeatsNotIndexed(t *testing.T) {
	// Bounds validation happens before the build check.
	c := NewCatalog(newTestLogger())
	if _, err := c.Query(10, 5); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("got %v, want ErrInvalidRange", err)
	}
}

func TestCatalogSetListingsInvalidatesIndex(t *testing.T) {
	c := NewCatalog(newTestLogger())
	c.SetListings(scenarioListings())
	c.BuildIndex()

	c.SetListings([]*models.Listing{{ID: "9", Price: 500, City: "C", SaleYear: 2022}})
	if _, err := c.Query(0, 1000); !errors.Is(err, ErrNotIndexed) {
		t.Fatalf("stale index accepted after SetListings: %v", err)
	}

	c.BuildIndex()
	results, err := c.Query(0, 1000)
	if err != nil {
		t.Fatalf("Query after rebuild: %v", err)
	}
	if len(results) != 1 || results[0].ID != "9" {
		t.Errorf("rebuild served stale data: got %d results", len(results))
	}
}

func TestCatalogSummariesWorkWithoutIndex(t *testing.T) {
	c := NewCatalog(newTestLogger())
	c.SetListings(scenarioListings())

	s := c.Summaries()
	if len(s.AverageByCity) != 2 {
		t.Errorf("AverageByCity: got %d cities, want 2", len(s.AverageByCity))
	}
}

func TestCatalogQueryEmptyRange(t *testing.T) {
	c := NewCatalog(newTestLogger())
	c.SetListings(scenarioListings())
	c.BuildIndex()

	results, err := c.Query(400, 500)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
