// Package types - usage and ROI analysis types
package types

import "github.com/shopspring/decimal"

// UsageObservation is a single reported usage figure for a subscription.
// The unit of Value depends on Metric: weekly minutes for time, monthly
// occurrences for count, days per week for frequency.
type UsageObservation struct {
	// SubscriptionID links the observation to a subscription
	SubscriptionID string `json:"subscription_id"`

	// Metric is the unit Value is measured in
	Metric MetricType `json:"metric"`

	// Value is the raw usage figure
	Value float64 `json:"value"`
}

// Grade is a letter grade summarizing cost-efficiency
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// String returns the string representation
func (g Grade) String() string {
	return string(g)
}

// quality orders grades for comparison, best first
func (g Grade) quality() int {
	switch g {
	case GradeA:
		return 0
	case GradeB:
		return 1
	case GradeC:
		return 2
	case GradeD:
		return 3
	default:
		return 4
	}
}

// BetterOrEqual reports whether g is at least as good as other
func (g Grade) BetterOrEqual(other Grade) bool {
	return g.quality() <= other.quality()
}

// Action is what the engine recommends doing with a subscription
type Action string

const (
	ActionKeep      Action = "keep"
	ActionReview    Action = "review"
	ActionDowngrade Action = "downgrade"
	ActionShare     Action = "share"
	ActionCancel    Action = "cancel"
)

// String returns the string representation
func (a Action) String() string {
	return string(a)
}

// ROIAnalysis is the derived value assessment of one subscription.
// It is recomputed from scratch on every invocation and never stored.
type ROIAnalysis struct {
	// SubscriptionID links back to the analyzed subscription
	SubscriptionID string `json:"subscription_id"`

	// SubscriptionName is the display name, carried for presentation
	SubscriptionName string `json:"subscription_name"`

	// Category is the subscription's category
	Category Category `json:"category"`

	// MonthlyPrice is the subscription's monthly price
	MonthlyPrice decimal.Decimal `json:"monthly_price"`

	// Metric is the usage metric the analysis is based on
	Metric MetricType `json:"metric"`

	// UsageValue is the raw usage figure that was graded
	UsageValue float64 `json:"usage_value"`

	// UsageLabel is the usage figure rendered with its unit
	UsageLabel string `json:"usage_label"`

	// CostEfficiency is currency per hour, per use or per day
	// depending on Metric. Zero when usage is zero or negative.
	CostEfficiency decimal.Decimal `json:"cost_efficiency"`

	// CostEfficiencyLabel is CostEfficiency rendered with its unit
	CostEfficiencyLabel string `json:"cost_efficiency_label"`

	// Grade summarizes cost-efficiency
	Grade Grade `json:"grade"`

	// Recommendation is the suggested action
	Recommendation Action `json:"recommendation"`

	// Reason explains the recommendation in plain language
	Reason string `json:"reason"`

	// PotentialSavings is the estimated monthly saving if the
	// recommendation is followed. Never exceeds MonthlyPrice; the
	// dedup stage may reduce it further.
	PotentialSavings decimal.Decimal `json:"potential_savings"`
}

// BenchmarkLevel classifies a user's usage against the category average
type BenchmarkLevel string

const (
	BenchmarkHeavy   BenchmarkLevel = "heavy"
	BenchmarkAverage BenchmarkLevel = "average"
	BenchmarkBelow   BenchmarkLevel = "below"
	BenchmarkMinimal BenchmarkLevel = "minimal"
)

// BenchmarkResult compares observed usage with the category average
type BenchmarkResult struct {
	// Level is the classification bucket
	Level BenchmarkLevel `json:"level"`

	// PercentOfAverage is user usage as a percentage of the average
	PercentOfAverage float64 `json:"percent_of_average"`

	// AverageMinutes is the reference weekly average for the category
	AverageMinutes float64 `json:"average_minutes"`

	// UserMinutes is the observed weekly usage
	UserMinutes float64 `json:"user_minutes"`

	// Feedback is a short human-readable assessment
	Feedback string `json:"feedback"`
}
