// Package output renders analysis results for humans and machines.
// The pure engine output is wrapped in a result envelope carrying
// execution metadata; the envelope, not the engine, owns the
// non-deterministic fields (id, timestamp).
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"subwise/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable text report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Result is the complete analysis output envelope
type Result struct {
	// ReportID uniquely identifies this run
	ReportID string `json:"report_id"`

	// GeneratedAt is the run timestamp, RFC3339
	GeneratedAt string `json:"generated_at"`

	// Currency is the display currency code
	Currency string `json:"currency"`

	// Analyses holds the per-subscription ROI records
	Analyses []types.ROIAnalysis `json:"analyses"`

	// Report is the savings report
	Report types.SavingsReport `json:"report"`

	// Chart is the projection series for charting
	Chart []types.InvestmentPoint `json:"chart,omitempty"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the result
	Render(w io.Writer, result *Result) error
}

// ForFormat returns the formatter for a format name, defaulting to CLI
func ForFormat(f Format) Formatter {
	if f == FormatJSON {
		return JSONFormatter{}
	}
	return CLIFormatter{}
}

// JSONFormatter renders the result as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (JSONFormatter) Format() Format { return FormatJSON }

// Render writes indented JSON
func (JSONFormatter) Render(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// CLIFormatter renders a human-readable text report
type CLIFormatter struct{}

// Format returns the format type
func (CLIFormatter) Format() Format { return FormatCLI }

// Render writes the text report
func (CLIFormatter) Render(w io.Writer, result *Result) error {
	if len(result.Analyses) > 0 {
		fmt.Fprintln(w, "Subscription value")
		fmt.Fprintln(w, "------------------")
		for _, a := range result.Analyses {
			fmt.Fprintf(w, "  [%s] %-24s %s/month  %s (%s)\n",
				a.Grade, a.SubscriptionName, types.FormatMoney(a.MonthlyPrice),
				a.UsageLabel, a.CostEfficiencyLabel)
			fmt.Fprintf(w, "       -> %s: %s\n", a.Recommendation, a.Reason)
		}
		fmt.Fprintln(w)
	}

	r := result.Report
	fmt.Fprintln(w, "Savings opportunities")
	fmt.Fprintln(w, "---------------------")
	if len(r.SavingsBreakdown) == 0 {
		fmt.Fprintln(w, "  none found")
	}
	for _, item := range r.SavingsBreakdown {
		if item.Advisory {
			fmt.Fprintf(w, "  (i)  %-32s %s\n", item.SubscriptionName, item.Description)
			continue
		}
		fmt.Fprintf(w, "  %-8s %-28s saves %s/month  [%s]\n",
			item.Action, item.SubscriptionName,
			types.FormatMoney(item.SavingsPerMonth), item.Source)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total: %s/month, %s/year\n\n",
		types.FormatMoney(r.MonthlySavings), types.FormatMoney(r.YearlySavings))

	if len(r.PurchaseAlternatives) > 0 {
		fmt.Fprintln(w, "A year of savings buys")
		for _, alt := range r.PurchaseAlternatives {
			fmt.Fprintf(w, "  %s %d x %s (%s each)\n",
				alt.Emoji, alt.Count, alt.Name, types.FormatMoney(alt.Price))
		}
		fmt.Fprintln(w)
	}

	if r.MonthlySavings.IsPositive() {
		fmt.Fprintln(w, "Invested instead (5 years)")
		fmt.Fprintf(w, "  deposit 3.5%%      %s\n", types.FormatMoney(r.Investment.Deposit5Y))
		fmt.Fprintf(w, "  broad index 8.5%%  %s\n", types.FormatMoney(r.Investment.BroadIndex5Y))
		fmt.Fprintf(w, "  global index 10.5%% %s\n", types.FormatMoney(r.Investment.GlobalIndex5Y))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, r.Summary)
	return nil
}
