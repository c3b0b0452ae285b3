package services

import (
	"testing"
	"time"

	"housing-analyzer/models"
)

func rawRecord(id, price, bedrooms, city, year string) *models.RawRecord {
	return &models.RawRecord{
		ID: id, Price: price, Bedrooms: bedrooms, City: city, SaleYear: year,
		SourceFile: "test.csv", LoadedAt: time.Now(),
	}
}

func TestCleanerParsePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"350000", 350000, false},
		{"350000.50", 350000.50, false},
		{"1,250,000", 1250000, false},
		{"$99000", 99000, false},
		{"0", 0, false},
		{"-100", 0, true},
		{"", 0, true},
		{"n/a", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePrice(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePrice(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parsePrice(%q) = %.2f; want %.2f", tt.raw, got, tt.want)
		}
	}
}

func TestCleanerParseSaleYear(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"2021", 2021, false},
		{" 2019 ", 2019, false},
		{"2021-06-30", 2021, false},
		{"21", 0, true},
		{"", 0, true},
		{"year", 0, true},
	}

	for _, tt := range tests {
		got, err := parseSaleYear(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSaleYear(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseSaleYear(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestCleanerDropsInvalidRows(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.RawRecord{
		rawRecord("1", "100000", "3", "Austin", "2020"),
		rawRecord("", "100000", "3", "Austin", "2020"),      // empty id
		rawRecord("2", "not-a-price", "3", "Austin", "2020"),
		rawRecord("3", "100000", "many", "Austin", "2020"),
		rawRecord("4", "100000", "3", "Austin", "someday"),
		rawRecord("5", "-5", "3", "Austin", "2020"), // negative price
	}

	cleaned := c.Clean(raw)
	if len(cleaned) != 1 {
		t.Fatalf("got %d listings, want 1", len(cleaned))
	}
	if cleaned[0].ID != "1" || cleaned[0].Price != 100000 || cleaned[0].Bedrooms != 3 {
		t.Errorf("unexpected surviving listing: %+v", cleaned[0])
	}
}

func TestCleanerDeduplicatesByID(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.RawRecord{
		rawRecord("42", "100000", "2", "Austin", "2020"),
		rawRecord("42", "200000", "4", "Dallas", "2021"),
	}

	cleaned := c.Clean(raw)
	if len(cleaned) != 1 {
		t.Fatalf("got %d listings, want 1", len(cleaned))
	}
	// First occurrence wins.
	if cleaned[0].City != "Austin" {
		t.Errorf("City: got %q, want Austin", cleaned[0].City)
	}
}

func TestCleanerNormalisesCity(t *testing.T) {
	c := NewCleaner(newTestLogger())
	raw := []*models.RawRecord{
		rawRecord("1", "100000", "3", "  San   Antonio ", "2020"),
	}

	cleaned := c.Clean(raw)
	if len(cleaned) != 1 {
		t.Fatalf("got %d listings, want 1", len(cleaned))
	}
	if cleaned[0].City != "San Antonio" {
		t.Errorf("City: got %q, want %q", cleaned[0].City, "San Antonio")
	}
}
