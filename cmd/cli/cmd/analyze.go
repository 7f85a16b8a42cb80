// Package cmd - analyze command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"subwise/adapters/catalogfile"
	"subwise/adapters/snapshot"
	"subwise/core/catalog"
	"subwise/core/output"
	"subwise/core/report"
	"subwise/internal/config"
	"subwise/internal/logging"
)

var (
	outputFormat string
	catalogDir   string
	chartYears   int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [snapshot.json]",
	Short: "Analyze a subscription snapshot",
	Long: `Grade every subscription with usage data, find savings
opportunities across all strategies and print the savings report.

The snapshot is a JSON file with "subscriptions" and optional "usage"
arrays. Catalogs are HCL files in the catalog directory.

Examples:
  subwise analyze snapshot.json
  subwise analyze --format json snapshot.json
  subwise analyze --catalog ./catalog --chart-years 5 snapshot.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	analyzeCmd.Flags().StringVarP(&catalogDir, "catalog", "c", "", "catalog directory (default from config)")
	analyzeCmd.Flags().IntVar(&chartYears, "chart-years", 5, "projection horizon for the chart series")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	start := time.Now()

	snap, err := snapshot.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	dir := catalogDir
	if dir == "" {
		dir = cfg.CatalogDir
	}
	cat := catalog.New()
	if _, statErr := os.Stat(dir); statErr == nil {
		cat, err = catalogfile.LoadDir(dir)
		if err != nil {
			return fmt.Errorf("loading catalogs: %w", err)
		}
	} else {
		logging.Warn("catalog directory missing, analyzing without catalogs",
			zap.String("dir", dir))
	}

	gen := report.NewGenerator(cat)
	analyses, rep := gen.GenerateFromUsage(snap.Subscriptions, snap.Usage)

	result := &output.Result{
		ReportID:    uuid.NewString(),
		GeneratedAt: start.UTC().Format(time.RFC3339),
		Currency:    cfg.Currency,
		Analyses:    analyses,
		Report:      rep,
	}
	if rep.MonthlySavings.IsPositive() && chartYears > 0 {
		result.Chart = gen.ChartSeries(rep.MonthlySavings, chartYears)
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output)
	}

	logging.Debug("analysis complete",
		zap.Int("subscriptions", len(snap.Subscriptions)),
		zap.Int("analyses", len(analyses)),
		zap.Int("opportunities", len(rep.SavingsBreakdown)),
		zap.Duration("took", time.Since(start)))

	return output.ForFormat(format).Render(os.Stdout, result)
}
