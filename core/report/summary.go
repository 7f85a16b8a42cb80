// Package report - rule-based summary generation
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"subwise/core/types"
)

// buildSummary assembles the natural-language report from template
// fragments keyed by which strategies contributed
func buildSummary(monthly, yearly decimal.Decimal, items []types.SavingsItem, sim types.InvestmentSimulation) string {
	actionable := make([]types.SavingsItem, 0, len(items))
	for _, item := range items {
		if !item.Advisory {
			actionable = append(actionable, item)
		}
	}

	if len(actionable) == 0 {
		return "Your subscription portfolio is already well optimized. There is not much room left to save."
	}

	var parts []string
	parts = append(parts, fmt.Sprintf(
		"The analysis found %d ways to save %s a month (%s a year).",
		len(actionable), types.FormatMoney(monthly), types.FormatMoney(yearly)))

	groups := groupByAction(actionable)

	if g := groups[types.SavingsCancel]; g.count > 0 {
		parts = append(parts, fmt.Sprintf(
			"Cancelling %d barely used subscription(s) frees up %s a month.",
			g.count, types.FormatMoney(g.total)))
	}
	if g := groups[types.SavingsShare]; g.count > 0 {
		parts = append(parts, fmt.Sprintf(
			"Family sharing cuts %s a month across %d subscription(s).",
			types.FormatMoney(g.total), g.count))
	}
	if g := groups[types.SavingsUseBundle]; g.count > 0 {
		parts = append(parts, fmt.Sprintf(
			"Consolidating into bundles saves %s a month.",
			types.FormatMoney(g.total)))
	}
	if g := groups[types.SavingsUseDiscount]; g.count > 0 {
		parts = append(parts, fmt.Sprintf(
			"Card and carrier discounts trim another %s a month.",
			types.FormatMoney(g.total)))
	}
	if g := groups[types.SavingsDowngrade]; g.count > 0 {
		parts = append(parts, fmt.Sprintf(
			"%d subscription(s) could move to a cheaper plan.", g.count))
	}

	if monthly.IsPositive() {
		parts = append(parts, fmt.Sprintf(
			"Invested for 5 years, the savings grow to roughly %s at a broad index or %s at a global index.",
			types.FormatMoney(sim.BroadIndex5Y.Round(0)),
			types.FormatMoney(sim.GlobalIndex5Y.Round(0))))
	}

	return strings.Join(parts, " ")
}

type actionGroup struct {
	count int
	total decimal.Decimal
}

func groupByAction(items []types.SavingsItem) map[types.SavingsAction]actionGroup {
	groups := make(map[types.SavingsAction]actionGroup)
	for _, item := range items {
		g := groups[item.Action]
		g.count++
		g.total = g.total.Add(item.SavingsPerMonth)
		groups[item.Action] = g
	}
	return groups
}
