// Package types - savings report types
package types

import "github.com/shopspring/decimal"

// SavingsAction is the concrete money-saving move behind a SavingsItem
type SavingsAction string

const (
	SavingsCancel      SavingsAction = "cancel"
	SavingsDowngrade   SavingsAction = "downgrade"
	SavingsShare       SavingsAction = "share"
	SavingsSwitchPlan  SavingsAction = "switch_plan"
	SavingsUseBundle   SavingsAction = "use_bundle"
	SavingsUseDiscount SavingsAction = "use_discount"
)

// String returns the string representation
func (a SavingsAction) String() string {
	return string(a)
}

// SavingsItem is one concrete savings opportunity. Bundle items cover
// several subscriptions at once; everything else targets exactly one.
type SavingsItem struct {
	// SubscriptionName is the display name; for bundles this is the
	// member names joined with " + "
	SubscriptionName string `json:"subscription_name"`

	// BundleMembers lists the constituent subscription names for
	// bundle items. Empty for single-subscription items.
	BundleMembers []string `json:"bundle_members,omitempty"`

	// CurrentMonthlyPrice is what the covered subscriptions cost today
	CurrentMonthlyPrice decimal.Decimal `json:"current_monthly_price"`

	// Action is the move that realizes the saving
	Action SavingsAction `json:"action"`

	// SavingsPerMonth is the monthly amount saved. Invariant:
	// SavingsPerMonth <= CurrentMonthlyPrice.
	SavingsPerMonth decimal.Decimal `json:"savings_per_month"`

	// Description explains the opportunity in plain language
	Description string `json:"description"`

	// Source names the analysis that produced the item
	Source string `json:"source"`

	// Advisory marks informational items that carry no savings and
	// are excluded from claiming and from totals
	Advisory bool `json:"advisory,omitempty"`
}

// Covers returns the subscription names this item claims. Bundles
// claim all their members; other items claim their single name.
func (i SavingsItem) Covers() []string {
	if len(i.BundleMembers) > 0 {
		return i.BundleMembers
	}
	return []string{i.SubscriptionName}
}

// PurchaseAlternative is one "what you could buy instead" line
type PurchaseAlternative struct {
	// Name of the everyday purchase
	Name string `json:"name"`

	// Price per unit
	Price decimal.Decimal `json:"price"`

	// Emoji for presentation
	Emoji string `json:"emoji"`

	// Count is how many the yearly savings buy
	Count int `json:"count"`
}

// InvestmentSimulation holds compound-growth end balances for the
// three fixed return profiles over 1, 3 and 5 year horizons
type InvestmentSimulation struct {
	// Deposit* assume a savings-account rate of 3.5%/year
	Deposit1Y decimal.Decimal `json:"deposit_1y"`
	Deposit3Y decimal.Decimal `json:"deposit_3y"`
	Deposit5Y decimal.Decimal `json:"deposit_5y"`

	// BroadIndex* assume a broad-market index rate of 8.5%/year
	BroadIndex1Y decimal.Decimal `json:"broad_index_1y"`
	BroadIndex3Y decimal.Decimal `json:"broad_index_3y"`
	BroadIndex5Y decimal.Decimal `json:"broad_index_5y"`

	// GlobalIndex* assume a global index rate of 10.5%/year
	GlobalIndex1Y decimal.Decimal `json:"global_index_1y"`
	GlobalIndex3Y decimal.Decimal `json:"global_index_3y"`
	GlobalIndex5Y decimal.Decimal `json:"global_index_5y"`
}

// InvestmentPoint is one month of the projection time series
type InvestmentPoint struct {
	// Month index, 0 = start
	Month int `json:"month"`

	// Label is a human-readable month label
	Label string `json:"label"`

	// Deposit balance at the 3.5% profile
	Deposit decimal.Decimal `json:"deposit"`

	// BroadIndex balance at the 8.5% profile
	BroadIndex decimal.Decimal `json:"broad_index"`

	// GlobalIndex balance at the 10.5% profile
	GlobalIndex decimal.Decimal `json:"global_index"`

	// Principal is the amount paid in so far, for comparison
	Principal decimal.Decimal `json:"principal"`
}

// SavingsReport is the final engine output
type SavingsReport struct {
	// MonthlySavings is the deduplicated, capped monthly total
	MonthlySavings decimal.Decimal `json:"monthly_savings"`

	// YearlySavings is MonthlySavings * 12
	YearlySavings decimal.Decimal `json:"yearly_savings"`

	// SavingsBreakdown lists the surviving opportunities, sorted by
	// savings descending. Invariant: the sum of SavingsPerMonth never
	// exceeds the billable subscriptions' total monthly spend.
	SavingsBreakdown []SavingsItem `json:"savings_breakdown"`

	// PurchaseAlternatives shows what the yearly savings could buy
	PurchaseAlternatives []PurchaseAlternative `json:"purchase_alternatives"`

	// Investment projects the monthly savings as invested capital
	Investment InvestmentSimulation `json:"investment"`

	// Summary is a generated natural-language report
	Summary string `json:"summary"`
}
