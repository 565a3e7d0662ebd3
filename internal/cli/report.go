package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ecotrack/ecotrack-backend/internal/application/service"
	"github.com/ecotrack/ecotrack-backend/internal/domain/category"
	"github.com/ecotrack/ecotrack-backend/internal/domain/rewards"
	"github.com/ecotrack/ecotrack-backend/internal/infrastructure/config"
	"github.com/ecotrack/ecotrack-backend/internal/model"
)

// ReportFlags holds the CLI flags for the report command.
type ReportFlags struct {
	ConfigPath string
	InputPath  string
	AsOf       string
}

// ParseReportFlags parses command line flags for the report command.
func ParseReportFlags() *ReportFlags {
	flags := &ReportFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "Configuration file path")
	flag.StringVar(&flags.InputPath, "input", "", "JSON file with a transactions array")
	flag.StringVar(&flags.AsOf, "as-of", "", "Reference time for windows (RFC3339, default now)")
	flag.Parse()
	return flags
}

// RunReport computes and prints a footprint/points report over a JSON
// transaction export, without touching any database.
func RunReport(flags *ReportFlags) error {
	if flags.InputPath == "" {
		return fmt.Errorf("-input is required")
	}

	now := time.Now().UTC()
	if flags.AsOf != "" {
		parsed, err := time.Parse(time.RFC3339, flags.AsOf)
		if err != nil {
			return fmt.Errorf("invalid -as-of time: %w", err)
		}
		now = parsed
	}

	data, err := os.ReadFile(flags.InputPath)
	if err != nil {
		return err
	}

	var txs []model.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return fmt.Errorf("input must be a JSON array of transactions: %w", err)
	}

	cfg := config.LoadOrEnvWithPath(flags.ConfigPath)
	engine := service.NewEngine(cfg.Engine, nil, nil)

	enriched, batch := engine.CalculateBatch(txs)
	footprint, points := engine.Summaries(enriched, now)
	garden := rewards.Progression(points.Total)

	printReport(enriched, batch, footprint, points, garden, now)
	return nil
}

func printReport(
	txs []model.Transaction,
	batch service.BatchSummary,
	footprint model.CarbonFootprintSummary,
	points model.EcoPointsSummary,
	garden rewards.GardenState,
	now time.Time,
) {
	fmt.Printf("ecotrack report (as of %s)\n", now.Format(time.RFC3339))
	fmt.Println(strings.Repeat("-", 60))

	fmt.Printf("Transactions: %d | Carbon: %.1f kg CO2e | Points: %d\n\n",
		len(txs), batch.TotalCarbon, batch.TotalEcoPoints)

	fmt.Println("Footprint windows:")
	fmt.Printf("  all-time: %.1f kg | 30d: %.1f kg | 7d: %.1f kg\n",
		footprint.Total, footprint.Monthly, footprint.Weekly)

	fmt.Println("By category:")
	for _, c := range category.All() {
		if kg, ok := footprint.ByCategory[c]; ok {
			fmt.Printf("  %-12s %.1f kg\n", c, kg)
		}
	}

	fmt.Println("\nEco points:")
	fmt.Printf("  total: %d | 30d: %d | 7d: %d\n",
		points.Total, points.EarnedThisMonth, points.EarnedThisWeek)

	fmt.Printf("\nGarden: %d plants (%d trees, %d sprouts, %d seedlings)\n",
		garden.PlantsUnlocked, garden.Trees, garden.Sprouts, garden.Seedlings)
	fmt.Printf("Next milestone: %d points (%.0f%% there)\n",
		garden.NextMilestone, garden.Progress*100)
}
