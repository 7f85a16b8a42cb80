// Package analyzers - discount strategy
package analyzers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"subwise/core/types"
)

// DiscountAnalyzer matches catalog discount events against
// subscriptions. When several events hit the same subscription only
// the single best one survives.
type DiscountAnalyzer struct{}

// Name identifies the strategy
func (DiscountAnalyzer) Name() string { return "discount" }

// Analyze computes the best applicable discount per subscription.
// Matching is substring in either direction on the raw names; the
// saving is a fixed amount or a percentage of the monthly price,
// capped at the monthly price.
func (DiscountAnalyzer) Analyze(in Input) []types.SavingsItem {
	if in.Catalog == nil {
		return nil
	}

	best := make(map[string]types.SavingsItem)
	for _, event := range in.Catalog.Discounts {
		for _, sub := range in.Subscriptions {
			if !eventTargets(event.TargetServices, sub.Name) {
				continue
			}

			var savings decimal.Decimal
			switch {
			case event.Amount.IsPositive():
				savings = event.Amount
			case event.Percent.IsPositive():
				savings = sub.MonthlyPrice.Mul(event.Percent).Div(decimal.NewFromInt(100)).Round(2)
			}
			if savings.GreaterThan(sub.MonthlyPrice) {
				savings = sub.MonthlyPrice
			}
			if !savings.IsPositive() {
				continue
			}

			existing, ok := best[sub.ID]
			if ok && !savings.GreaterThan(existing.SavingsPerMonth) {
				continue
			}
			best[sub.ID] = types.SavingsItem{
				SubscriptionName:    sub.Name,
				CurrentMonthlyPrice: sub.MonthlyPrice,
				Action:              types.SavingsUseDiscount,
				SavingsPerMonth:     savings,
				Description:         fmt.Sprintf("%s: %s", event.Title, event.Description),
				Source:              fmt.Sprintf("%s (%s)", event.Kind.Label(), event.Provider),
			}
		}
	}

	ids := make([]string, 0, len(best))
	for id := range best {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]types.SavingsItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, best[id])
	}
	return items
}

func eventTargets(targets []string, subscriptionName string) bool {
	for _, target := range targets {
		if strings.Contains(subscriptionName, target) || strings.Contains(target, subscriptionName) {
			return true
		}
	}
	return false
}
