// Package roi - per-subscription analysis assembly
package roi

import (
	"subwise/core/catalog"
	"subwise/core/types"
)

// Analyze grades a single subscription against an observed usage
// value and resolves the recommendation. metric overrides the
// category default when the observation carries its own metric tag.
func Analyze(sub types.Subscription, metric types.MetricType, usageValue float64, sharingAvailable bool) types.ROIAnalysis {
	if !metric.IsValid() {
		metric = sub.Category.Metric()
	}

	grade, efficiency := GradeUsage(metric, sub.MonthlyPrice, usageValue)
	action, reason := Recommend(grade, sub, metric, sharingAvailable)

	return types.ROIAnalysis{
		SubscriptionID:      sub.ID,
		SubscriptionName:    sub.Name,
		Category:            sub.Category,
		MonthlyPrice:        sub.MonthlyPrice,
		Metric:              metric,
		UsageValue:          usageValue,
		UsageLabel:          UsageLabel(metric, usageValue),
		CostEfficiency:      efficiency,
		CostEfficiencyLabel: EfficiencyLabel(metric, efficiency),
		Grade:               grade,
		Recommendation:      action,
		Reason:              reason,
		PotentialSavings:    PotentialSavings(action, sub.MonthlyPrice),
	}
}

// AnalyzeAll runs the analysis for every billable subscription that
// has a usage observation. Subscriptions without usage data are
// skipped: no usage means no grading. Output order follows the input
// subscription order for determinism.
func AnalyzeAll(subs []types.Subscription, observations []types.UsageObservation, cat *catalog.Catalog) []types.ROIAnalysis {
	bySub := make(map[string]types.UsageObservation, len(observations))
	for _, obs := range observations {
		bySub[obs.SubscriptionID] = obs
	}

	var analyses []types.ROIAnalysis
	for _, sub := range types.Billable(subs) {
		obs, ok := bySub[sub.ID]
		if !ok {
			continue
		}
		sharing := cat != nil && cat.SharingAvailable(sub)
		analyses = append(analyses, Analyze(sub, obs.Metric, obs.Value, sharing))
	}
	return analyses
}
