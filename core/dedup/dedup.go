// Package dedup resolves overlapping savings claims and enforces the
// global capping invariant: total proposed savings never exceed total
// current spend. This stage is the only sequence-sensitive part of
// the engine; its ordering is fully specified and deterministic.
package dedup

import (
	"sort"

	"github.com/shopspring/decimal"

	"subwise/core/types"
)

// Resolve merges candidate items from all strategies:
//
//  1. bundle items are accepted greedily by savings descending; a
//     bundle loses if any of its member names is already claimed by a
//     previously accepted bundle
//  2. non-bundle items on claimed names are dropped; of the rest only
//     the best item per subscription name survives
//  3. every survivor is clamped to its own current monthly price
//  4. if the total still exceeds the billable monthly spend, all
//     items are scaled down proportionally (rounding down, so the
//     invariant holds exactly)
//
// Advisory items carry no savings: they never claim names, never
// count toward totals, and are appended to the result untouched.
// Greedy-by-value bundle selection approximates the optimal choice;
// bundles are few and small in practice. Input items are not mutated.
func Resolve(items []types.SavingsItem, billable []types.Subscription) []types.SavingsItem {
	var bundles, singles, advisory []types.SavingsItem
	for _, item := range items {
		switch {
		case item.Advisory || !item.SavingsPerMonth.IsPositive():
			advisory = append(advisory, item)
		case item.Action == types.SavingsUseBundle:
			bundles = append(bundles, item)
		default:
			singles = append(singles, item)
		}
	}

	sortItems(bundles)

	claimed := make(map[string]struct{})
	var selected []types.SavingsItem
	for _, bundle := range bundles {
		if claimsConflict(bundle, claimed) {
			continue
		}
		for _, name := range bundle.Covers() {
			claimed[name] = struct{}{}
		}
		selected = append(selected, bundle)
	}

	bestByName := make(map[string]types.SavingsItem)
	for _, item := range singles {
		if _, taken := claimed[item.SubscriptionName]; taken {
			continue
		}
		existing, ok := bestByName[item.SubscriptionName]
		if ok && !item.SavingsPerMonth.GreaterThan(existing.SavingsPerMonth) {
			continue
		}
		bestByName[item.SubscriptionName] = item
	}

	names := make([]string, 0, len(bestByName))
	for name := range bestByName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		selected = append(selected, bestByName[name])
	}

	// per-item bound: never save more than the subscription costs
	for i := range selected {
		if selected[i].SavingsPerMonth.GreaterThan(selected[i].CurrentMonthlyPrice) {
			selected[i].SavingsPerMonth = selected[i].CurrentMonthlyPrice
		}
	}

	// global cap: uniform proportional scale-down keeps the invariant
	// without favoring one strategy
	totalSpend := types.TotalMonthlySpend(billable)
	totalSavings := sumSavings(selected)
	if totalSavings.GreaterThan(totalSpend) && totalSavings.IsPositive() {
		ratio := totalSpend.Div(totalSavings)
		for i := range selected {
			selected[i].SavingsPerMonth = selected[i].SavingsPerMonth.Mul(ratio).RoundDown(2)
		}
	}

	selected = append(selected, advisory...)
	sortItems(selected)
	return selected
}

// TotalSavings sums the non-advisory savings of resolved items
func TotalSavings(items []types.SavingsItem) decimal.Decimal {
	return sumSavings(items)
}

func sumSavings(items []types.SavingsItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Advisory {
			continue
		}
		total = total.Add(item.SavingsPerMonth)
	}
	return total
}

func claimsConflict(bundle types.SavingsItem, claimed map[string]struct{}) bool {
	for _, name := range bundle.Covers() {
		if _, taken := claimed[name]; taken {
			return true
		}
	}
	return false
}

// sortItems orders by savings descending, name ascending on ties so
// identical inputs always produce identical output
func sortItems(items []types.SavingsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].SavingsPerMonth.Equal(items[j].SavingsPerMonth) {
			return items[i].SavingsPerMonth.GreaterThan(items[j].SavingsPerMonth)
		}
		return items[i].SubscriptionName < items[j].SubscriptionName
	})
}
