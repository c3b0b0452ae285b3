package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"housing-analyzer/config"
	"housing-analyzer/services"
	"housing-analyzer/storage"
	"housing-analyzer/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(utils.ParseLevel(cfg.LogLevel))

	logger.Info("=== Housing Market Analyzer starting ===")
	logger.Info("Config — inputs: %s | report: %s | concurrency: %d | postgres: %v",
		strings.Join(cfg.CSVInputPaths, ", "), cfg.ReportOutputPath, cfg.MaxConcurrency, cfg.PostgresEnabled)

	loader := services.NewLoader(logger, cfg.MaxConcurrency)
	rawRecords, err := loader.Load(cfg.CSVInputPaths)
	if err != nil {
		logger.Error("Load failed: %v", err)
		os.Exit(1)
	}

	cleaner := services.NewCleaner(logger)
	listings := cleaner.Clean(rawRecords)
	if len(listings) == 0 {
		logger.Error("All records were dropped during cleaning. Exiting.")
		os.Exit(1)
	}

	if cfg.PostgresEnabled {
		retry := &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		}
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), retry)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			logger.Error("Make sure Docker is running: docker compose up -d")
			os.Exit(1)
		}
		defer pgWriter.Close()

		if err := pgWriter.Write(listings); err != nil {
			logger.Error("PostgreSQL write failed: %v", err)
		} else {
			logger.Info("Listings stored in PostgreSQL (table: listings)")
			if dbListings, err := pgWriter.FetchAll(); err != nil {
				logger.Error("Failed to fetch listings back from DB: %v", err)
			} else {
				listings = dbListings
			}
		}
	}

	catalog := services.NewCatalog(logger)
	catalog.SetListings(listings)
	catalog.BuildIndex()

	minPrice, maxPrice := queryBounds(cfg, logger)

	results, err := catalog.Query(minPrice, maxPrice)
	if err != nil {
		logger.Error("Range query failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Range query [$%.2f, $%.2f] matched %d listing(s)", minPrice, maxPrice, len(results))

	reportWriter, err := storage.NewReportWriter(cfg.ReportOutputPath)
	if err != nil {
		logger.Error("Failed to create report writer: %v", err)
		os.Exit(1)
	}
	if err := reportWriter.WriteResults(minPrice, maxPrice, results); err != nil {
		logger.Error("Report write failed: %v", err)
	} else {
		logger.Info("Search results written to %s", cfg.ReportOutputPath)
	}
	if err := reportWriter.Close(); err != nil {
		logger.Error("Report close failed: %v", err)
	}

	visualizer := services.NewVisualizer()
	visualizer.Render(catalog.Report(), catalog.Summaries())

	fmt.Printf("  Done. Report → %s\n\n", cfg.ReportOutputPath)
}

// queryBounds returns the price range to search, either preset from the
// environment or prompted interactively until 0 <= min <= max holds.
func queryBounds(cfg *config.Config, logger *utils.Logger) (float64, float64) {
	if cfg.BoundsGiven {
		if cfg.MinPrice >= 0 && cfg.MinPrice <= cfg.MaxPrice {
			logger.Info("Using preset price range: $%.2f – $%.2f", cfg.MinPrice, cfg.MaxPrice)
			return cfg.MinPrice, cfg.MaxPrice
		}
		logger.Warn("Preset MIN_PRICE/MAX_PRICE invalid (need 0 <= min <= max) — prompting instead")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		minPrice, ok := promptFloat(scanner, "Enter the minimum price: $")
		if !ok {
			fmt.Println("Invalid input. Please enter valid positive numbers with max price greater than min price.")
			continue
		}
		maxPrice, ok := promptFloat(scanner, "Enter the maximum price: $")
		if !ok || minPrice < 0 || maxPrice < 0 || minPrice > maxPrice {
			fmt.Println("Invalid input. Please enter valid positive numbers with max price greater than min price.")
			continue
		}
		return minPrice, maxPrice
	}
}

func promptFloat(scanner *bufio.Scanner, prompt string) (float64, bool) {
	fmt.Print(prompt)
	if !scanner.Scan() {
		// stdin closed; nothing sensible left to do
		fmt.Println()
		os.Exit(1)
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
