package services

import (
	"fmt"
	"sort"
	"strings"

	"housing-analyzer/models"
)

const barWidth = 40

// Visualizer renders summaries as ANSI charts on stdout. It owns all output
// ordering: the aggregator's maps carry no order of their own.
type Visualizer struct{}

// NewVisualizer creates a Visualizer.
func NewVisualizer() *Visualizer {
	return &Visualizer{}
}

// Render prints the overall report, the per-city average chart and the
// per-year trend tables.
func (v *Visualizer) Render(report *models.InsightReport, summary *models.Summary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 HOUSING MARKET INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total listings : \033[1m%d\033[0m\n", report.TotalListings)
	if report.TotalListings > 0 {
		fmt.Printf("  Average price  : \033[1;32m$%.2f\033[0m\n", report.AveragePrice)
		fmt.Printf("  Minimum price  : \033[1;32m$%.2f\033[0m\n", report.MinPrice)
		fmt.Printf("  Maximum price  : \033[1;32m$%.2f\033[0m\n", report.MaxPrice)
	}
	if report.MostExpensive != nil {
		fmt.Printf("  Most expensive : %s ($%.2f, %s)\n",
			report.MostExpensive.ID, report.MostExpensive.Price, report.MostExpensive.City)
	}
	fmt.Println()

	v.renderAverages(summary.AverageByCity, thin)
	v.renderTrends(summary.Trends, thin)

	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)
}

// renderAverages draws a bar chart of mean price per city, highest first.
func (v *Visualizer) renderAverages(averages map[string]float64, thin string) {
	fmt.Printf("\033[1;33m  Average Price by Location\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(averages) == 0 {
		fmt.Printf("  No location data\n\n")
		return
	}

	cities := make([]string, 0, len(averages))
	var maxAvg float64
	for city, avg := range averages {
		cities = append(cities, city)
		if avg > maxAvg {
			maxAvg = avg
		}
	}
	sort.Slice(cities, func(i, j int) bool {
		return averages[cities[i]] > averages[cities[j]]
	})

	for _, city := range cities {
		avg := averages[city]
		n := 1
		if maxAvg > 0 {
			n = int(avg / maxAvg * barWidth)
			if n < 1 {
				n = 1
			}
		}
		bar := strings.Repeat("█", n)
		fmt.Printf("  %-20s %s $%.2f\n", truncate(city, 18), bar, avg)
	}
	fmt.Println()
}

// renderTrends prints one block per sale year, years ascending, cities sorted.
func (v *Visualizer) renderTrends(trends map[int]map[string]float64, thin string) {
	fmt.Printf("\033[1;33m  Price Trends by Year and Location\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(trends) == 0 {
		fmt.Printf("  No trend data\n\n")
		return
	}

	years := make([]int, 0, len(trends))
	for year := range trends {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		fmt.Printf("  \033[1m%d\033[0m\n", year)

		cities := make([]string, 0, len(trends[year]))
		for city := range trends[year] {
			cities = append(cities, city)
		}
		sort.Strings(cities)

		for _, city := range cities {
			fmt.Printf("    %-20s $%.2f\n", truncate(city, 18), trends[year][city])
		}
	}
	fmt.Println()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
