package services

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const csvHeader = "zpid,latestPrice,numOfBedrooms,city,latest_saleyear\n"

func TestLoaderCombinesFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", csvHeader+"1,100000,2,Austin,2020\n2,200000,3,Dallas,2021\n")
	b := writeCSV(t, dir, "b.csv", csvHeader+"3,300000,4,Austin,2021\n")

	ld := NewLoader(newTestLogger(), 2)
	records, err := ld.Load([]string{a, b})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestLoaderFailsOnBadFile(t *testing.T) {
	dir := t.TempDir()
	good := writeCSV(t, dir, "good.csv", csvHeader+"1,100000,2,Austin,2020\n")

	ld := NewLoader(newTestLogger(), 2)
	if _, err := ld.Load([]string{good, filepath.Join(dir, "missing.csv")}); err == nil {
		t.Fatal("expected error when one input file is missing")
	}
}

func TestLoaderNoPaths(t *testing.T) {
	ld := NewLoader(newTestLogger(), 1)
	if _, err := ld.Load(nil); err == nil {
		t.Fatal("expected error for empty path list")
	}
}
