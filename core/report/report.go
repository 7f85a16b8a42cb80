// Package report assembles the final savings report: it runs the
// strategy analyzers over a subscription snapshot, resolves the
// candidates through dedup, and attaches the investment projection,
// purchase alternatives and a generated summary.
//
// The generator is a pure, synchronous transformation. Catalogs are
// injected, nothing is persisted, and identical inputs always produce
// identical output.
package report

import (
	"github.com/shopspring/decimal"

	"subwise/core/analyzers"
	"subwise/core/catalog"
	"subwise/core/dedup"
	"subwise/core/invest"
	"subwise/core/roi"
	"subwise/core/types"
)

// Generator runs the savings pipeline against an injected catalog
type Generator struct {
	catalog   *catalog.Catalog
	registry  *analyzers.Registry
	purchases []PurchasePrice
}

// Option customizes a Generator
type Option func(*Generator)

// WithRegistry replaces the default strategy registry
func WithRegistry(r *analyzers.Registry) Option {
	return func(g *Generator) { g.registry = r }
}

// WithPurchaseCatalog replaces the default purchase-alternative
// price catalog
func WithPurchaseCatalog(prices []PurchasePrice) Option {
	return func(g *Generator) { g.purchases = prices }
}

// NewGenerator creates a generator over the given catalog with the
// five standard strategies registered
func NewGenerator(cat *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog:   cat,
		registry:  analyzers.DefaultRegistry(),
		purchases: DefaultPurchaseCatalog(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AnalyzeROI grades every billable subscription with a usage
// observation. An empty observation list yields no analyses.
func (g *Generator) AnalyzeROI(subs []types.Subscription, observations []types.UsageObservation) []types.ROIAnalysis {
	return roi.AnalyzeAll(subs, observations, g.catalog)
}

// Generate produces the savings report for a subscription snapshot
// and previously computed ROI analyses
func (g *Generator) Generate(subs []types.Subscription, analyses []types.ROIAnalysis) types.SavingsReport {
	billable := types.Billable(subs)
	if len(billable) == 0 {
		return types.SavingsReport{
			MonthlySavings:       decimal.Zero,
			YearlySavings:        decimal.Zero,
			SavingsBreakdown:     []types.SavingsItem{},
			PurchaseAlternatives: []types.PurchaseAlternative{},
			Investment:           invest.Simulate(decimal.Zero),
			Summary:              "There are no active subscriptions to analyze.",
		}
	}

	candidates := g.registry.Run(analyzers.Input{
		Subscriptions: billable,
		Analyses:      analyses,
		Catalog:       g.catalog,
	})
	breakdown := dedup.Resolve(candidates, billable)

	monthly := dedup.TotalSavings(breakdown).Round(2)
	yearly := monthly.Mul(decimal.NewFromInt(12)).Round(2)

	simulation := invest.Simulate(monthly)

	return types.SavingsReport{
		MonthlySavings:       monthly,
		YearlySavings:        yearly,
		SavingsBreakdown:     breakdown,
		PurchaseAlternatives: Alternatives(yearly, g.purchases),
		Investment:           simulation,
		Summary:              buildSummary(monthly, yearly, breakdown, simulation),
	}
}

// GenerateFromUsage is the one-call form: grade usage, then build
// the report
func (g *Generator) GenerateFromUsage(subs []types.Subscription, observations []types.UsageObservation) ([]types.ROIAnalysis, types.SavingsReport) {
	analyses := g.AnalyzeROI(subs, observations)
	return analyses, g.Generate(subs, analyses)
}

// ChartSeries exposes the projection time series for charting,
// downsampled for display
func (g *Generator) ChartSeries(monthlySavings decimal.Decimal, years int) []types.InvestmentPoint {
	return invest.ChartSeries(monthlySavings, years)
}
