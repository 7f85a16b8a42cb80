// Package analyzers - downgrade strategy
package analyzers

import (
	"fmt"

	"github.com/shopspring/decimal"

	"subwise/core/catalog"
	"subwise/core/types"
)

// DowngradeAnalyzer turns downgrade recommendations into concrete
// cheaper-plan proposals using the service preset's pricing ladder
type DowngradeAnalyzer struct{}

// Name identifies the strategy
func (DowngradeAnalyzer) Name() string { return "downgrade" }

// Analyze picks, for every downgrade recommendation, the most
// expensive preset plan still cheaper than the current monthly price
// (the smallest step down) and emits the price difference. Services
// without a multi-plan preset are skipped.
func (DowngradeAnalyzer) Analyze(in Input) []types.SavingsItem {
	if in.Catalog == nil {
		return nil
	}

	var items []types.SavingsItem
	for _, analysis := range in.Analyses {
		if analysis.Recommendation != types.ActionDowngrade {
			continue
		}
		sub, ok := in.subscriptionByID(analysis.SubscriptionID)
		if !ok {
			continue
		}
		preset, ok := in.Catalog.Preset(sub.Name)
		if !ok || len(preset.Plans) <= 1 {
			continue
		}

		target, targetMonthly, found := closestCheaperPlan(preset.Plans, sub.MonthlyPrice)
		if !found {
			continue
		}
		savings := sub.MonthlyPrice.Sub(targetMonthly)

		items = append(items, types.SavingsItem{
			SubscriptionName:    sub.Name,
			CurrentMonthlyPrice: sub.MonthlyPrice,
			Action:              types.SavingsDowngrade,
			SavingsPerMonth:     savings,
			Description: fmt.Sprintf("Switching to the %s plan (%s/month) is recommended.",
				target.Name, types.FormatMoney(targetMonthly)),
			Source: "plan downgrade",
		})
	}
	return items
}

// closestCheaperPlan returns the plan with the largest monthly price
// still strictly below current
func closestCheaperPlan(plans []catalog.Plan, current decimal.Decimal) (catalog.Plan, decimal.Decimal, bool) {
	var best catalog.Plan
	var bestMonthly decimal.Decimal
	found := false

	for _, p := range plans {
		monthly := p.Monthly()
		if !monthly.LessThan(current) {
			continue
		}
		if !found || monthly.GreaterThan(bestMonthly) {
			best, bestMonthly, found = p, monthly, true
		}
	}
	return best, bestMonthly, found
}
