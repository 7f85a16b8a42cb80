// Package analyzers - bundle strategy
package analyzers

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"subwise/core/catalog"
	"subwise/core/types"
)

// BundleAnalyzer proposes replacing several subscriptions with a
// combined bundle product from the catalog
type BundleAnalyzer struct{}

// Name identifies the strategy
func (BundleAnalyzer) Name() string { return "bundle" }

// Analyze matches catalog bundles against the subscription set.
// Three outcomes per bundle:
//   - non-conditional and cheaper than the matched subscriptions:
//     a real savings item
//   - conditional (provider-gated) matching 2+ subscriptions:
//     an advisory zero-savings item
//   - non-conditional, not cheaper, matching 2+ subscriptions:
//     an advisory zero-savings item
//
// A bundle is skipped entirely when the user already subscribes to a
// service whose normalized name equals the bundle's own name.
func (BundleAnalyzer) Analyze(in Input) []types.SavingsItem {
	if in.Catalog == nil {
		return nil
	}

	var items []types.SavingsItem
	for _, bundle := range in.Catalog.Bundles {
		matched := matchBundle(in.Subscriptions, bundle)
		if len(matched) == 0 {
			continue
		}
		if alreadyUsingBundle(in.Subscriptions, bundle) {
			continue
		}

		currentCost := types.TotalMonthlySpend(matched)
		names := make([]string, len(matched))
		for i, s := range matched {
			names[i] = s.Name
		}
		joined := strings.Join(names, " + ")

		switch {
		case bundle.Conditional:
			if len(matched) < 2 {
				continue
			}
			items = append(items, types.SavingsItem{
				SubscriptionName:    joined,
				BundleMembers:       names,
				CurrentMonthlyPrice: currentCost,
				Action:              types.SavingsUseBundle,
				SavingsPerMonth:     decimal.Zero,
				Description: fmt.Sprintf("%s subscribers get %s covered by the %s perk.",
					bundle.Provider, strings.Join(names, ", "), bundle.Name),
				Source:   fmt.Sprintf("bundle deal (%s)", bundle.Provider),
				Advisory: true,
			})

		case bundle.Price.LessThan(currentCost):
			savings := currentCost.Sub(bundle.Price)
			items = append(items, types.SavingsItem{
				SubscriptionName:    joined,
				BundleMembers:       names,
				CurrentMonthlyPrice: currentCost,
				Action:              types.SavingsUseBundle,
				SavingsPerMonth:     savings,
				Description: fmt.Sprintf("Consolidating into %s (%s/month) saves %s a month.",
					bundle.Name, types.FormatMoney(bundle.Price), types.FormatMoney(savings)),
				Source: fmt.Sprintf("bundle deal (%s)", bundle.Provider),
			})

		case len(matched) >= 2:
			items = append(items, types.SavingsItem{
				SubscriptionName:    joined,
				BundleMembers:       names,
				CurrentMonthlyPrice: currentCost,
				Action:              types.SavingsUseBundle,
				SavingsPerMonth:     decimal.Zero,
				Description: fmt.Sprintf("%s also covers %s. Shared with family it can come out cheaper.",
					bundle.Name, strings.Join(names, ", ")),
				Source:   fmt.Sprintf("bundle deal (%s)", bundle.Provider),
				Advisory: true,
			})
		}
	}
	return items
}

// matchBundle finds subscriptions whose names fuzzy-match any of the
// bundle's included services
func matchBundle(subs []types.Subscription, bundle catalog.BundleDeal) []types.Subscription {
	var matched []types.Subscription
	for _, sub := range subs {
		for _, included := range bundle.IncludedServices {
			if catalog.FuzzyMatch(sub.Name, included) {
				matched = append(matched, sub)
				break
			}
		}
	}
	return matched
}

// alreadyUsingBundle detects a subscription to the bundle itself
func alreadyUsingBundle(subs []types.Subscription, bundle catalog.BundleDeal) bool {
	want := catalog.NormalizeServiceName(bundle.Name)
	for _, sub := range subs {
		if catalog.NormalizeServiceName(sub.Name) == want {
			return true
		}
	}
	return false
}
