// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and
// derivations that keep a record internally consistent.
package types

import "github.com/shopspring/decimal"

// Category classifies what kind of service a subscription is
type Category string

const (
	CategoryVideo        Category = "video"
	CategoryMusic        Category = "music"
	CategoryCloud        Category = "cloud"
	CategoryProductivity Category = "productivity"
	CategoryShopping     Category = "shopping"
	CategoryGaming       Category = "gaming"
	CategoryReading      Category = "reading"
	CategoryOther        Category = "other"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is a known category
func (c Category) IsValid() bool {
	switch c {
	case CategoryVideo, CategoryMusic, CategoryCloud, CategoryProductivity,
		CategoryShopping, CategoryGaming, CategoryReading, CategoryOther:
		return true
	default:
		return false
	}
}

// Metric returns the usage metric a category is measured in.
// Video, music and gaming are time-based; shopping is count-based;
// everything else is measured as days of use per week.
func (c Category) Metric() MetricType {
	switch c {
	case CategoryVideo, CategoryMusic, CategoryGaming:
		return MetricTime
	case CategoryShopping:
		return MetricCount
	default:
		return MetricFrequency
	}
}

// MetricType identifies the unit a subscription's usage is measured in
type MetricType string

const (
	// MetricTime is weekly usage minutes
	MetricTime MetricType = "time"

	// MetricCount is monthly occurrence count
	MetricCount MetricType = "count"

	// MetricFrequency is days of use per week (0-7)
	MetricFrequency MetricType = "frequency"
)

// String returns the string representation
func (m MetricType) String() string {
	return string(m)
}

// IsValid checks if the metric type is known
func (m MetricType) IsValid() bool {
	switch m {
	case MetricTime, MetricCount, MetricFrequency:
		return true
	default:
		return false
	}
}

// BillingCycle is how often a subscription bills
type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

// Status is the lifecycle state of a subscription
type Status string

const (
	StatusActive    Status = "active"
	StatusTrial     Status = "trial"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

// Billable reports whether the subscription currently costs money.
// Trials count: they convert into paid plans unless acted on.
func (s Status) Billable() bool {
	return s == StatusActive || s == StatusTrial
}

// Subscription is a single recurring service the user pays for
type Subscription struct {
	// ID uniquely identifies this subscription
	ID string `json:"id"`

	// Name is the display name of the service
	Name string `json:"name"`

	// Category classifies the service
	Category Category `json:"category"`

	// Cycle is the billing cycle
	Cycle BillingCycle `json:"cycle"`

	// Price is the price per billing cycle
	Price decimal.Decimal `json:"price"`

	// MonthlyPrice is the derived per-month price. For yearly plans this
	// is Price/12 rounded to the minor unit; for monthly plans it equals
	// Price. Always non-negative.
	MonthlyPrice decimal.Decimal `json:"monthly_price"`

	// Status is the lifecycle state
	Status Status `json:"status"`

	// IsShared reports whether the plan is already shared with others
	IsShared bool `json:"is_shared"`

	// SharedCount is how many people share the plan, when known
	SharedCount int `json:"shared_count,omitempty"`

	// PlanName is the plan tier, when known
	PlanName string `json:"plan_name,omitempty"`
}

// Normalize derives MonthlyPrice from Price and Cycle and clamps
// negative prices to zero. Input loaders call this once; the engine
// trusts the invariant afterwards.
func (s *Subscription) Normalize() {
	if s.Price.IsNegative() {
		s.Price = decimal.Zero
	}
	if s.Cycle == CycleYearly {
		s.MonthlyPrice = s.Price.Div(decimal.NewFromInt(12)).Round(2)
	} else {
		s.MonthlyPrice = s.Price
	}
}

// Billable returns only the subscriptions that currently cost money
func Billable(subs []Subscription) []Subscription {
	out := make([]Subscription, 0, len(subs))
	for _, s := range subs {
		if s.Status.Billable() {
			out = append(out, s)
		}
	}
	return out
}

// TotalMonthlySpend sums the monthly price of the given subscriptions
func TotalMonthlySpend(subs []Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subs {
		total = total.Add(s.MonthlyPrice)
	}
	return total
}
