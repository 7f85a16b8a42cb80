// Package analyzers - family sharing strategy
package analyzers

import (
	"fmt"

	"subwise/core/types"
)

// SharingAnalyzer proposes moving unshared subscriptions onto their
// service's family plan
type SharingAnalyzer struct{}

// Name identifies the strategy
func (SharingAnalyzer) Name() string { return "sharing" }

// Analyze emits one item per unshared subscription whose service
// preset defines a family plan. Per-person savings = monthly price
// minus the family price split across members, rounded up.
func (SharingAnalyzer) Analyze(in Input) []types.SavingsItem {
	if in.Catalog == nil {
		return nil
	}

	var items []types.SavingsItem
	for _, sub := range in.Subscriptions {
		if sub.IsShared {
			continue
		}
		preset, ok := in.Catalog.Preset(sub.Name)
		if !ok || preset.FamilyPlan == nil {
			continue
		}

		fp := preset.FamilyPlan
		perPerson := fp.PerPersonPrice()
		savings := sub.MonthlyPrice.Sub(perPerson)
		if !savings.IsPositive() {
			continue
		}

		items = append(items, types.SavingsItem{
			SubscriptionName:    sub.Name,
			CurrentMonthlyPrice: sub.MonthlyPrice,
			Action:              types.SavingsShare,
			SavingsPerMonth:     savings,
			Description: fmt.Sprintf("Sharing the %s plan with %d people works out to %s per person.",
				fp.Name, fp.MaxMembers, types.FormatMoney(perPerson)),
			Source: "family sharing",
		})
	}
	return items
}
