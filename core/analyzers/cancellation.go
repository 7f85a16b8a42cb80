// Package analyzers - cancellation strategy
package analyzers

import (
	"fmt"

	"subwise/core/types"
)

// CancellationAnalyzer turns cancel recommendations from the ROI
// analysis into savings items worth the full monthly price
type CancellationAnalyzer struct{}

// Name identifies the strategy
func (CancellationAnalyzer) Name() string { return "cancellation" }

// Analyze emits one item per analysis recommending cancellation,
// carrying the resolver's reason as description. Without usage data
// there are no analyses and no output.
func (CancellationAnalyzer) Analyze(in Input) []types.SavingsItem {
	var items []types.SavingsItem
	for _, analysis := range in.Analyses {
		if analysis.Recommendation != types.ActionCancel {
			continue
		}
		sub, ok := in.subscriptionByID(analysis.SubscriptionID)
		if !ok {
			continue
		}

		items = append(items, types.SavingsItem{
			SubscriptionName:    sub.Name,
			CurrentMonthlyPrice: sub.MonthlyPrice,
			Action:              types.SavingsCancel,
			SavingsPerMonth:     sub.MonthlyPrice,
			Description:         analysis.Reason,
			Source:              fmt.Sprintf("usage review (grade %s)", analysis.Grade),
		})
	}
	return items
}
