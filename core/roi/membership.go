// Package roi - membership value calculators
// Some memberships pay the user back (cashback, waived delivery
// fees). These models compute whether such a membership earns its
// price back, independent of the usage grader.
package roi

import (
	"github.com/shopspring/decimal"
)

// MembershipVerdict classifies a membership's return on its price
type MembershipVerdict string

const (
	VerdictExcellent MembershipVerdict = "excellent"
	VerdictGood      MembershipVerdict = "good"
	VerdictBreakEven MembershipVerdict = "break_even"
	VerdictLoss      MembershipVerdict = "loss"
)

// MembershipResult is the outcome of a membership value calculation
type MembershipResult struct {
	// Savings is the monthly amount the membership gives back
	Savings decimal.Decimal `json:"savings"`

	// ROIPercent is Savings relative to the membership price, in percent
	ROIPercent decimal.Decimal `json:"roi_percent"`

	// Breakdown itemizes where the savings come from
	Breakdown []MembershipLine `json:"breakdown"`

	// Verdict classifies the return
	Verdict MembershipVerdict `json:"verdict"`
}

// MembershipLine is one line of a membership savings breakdown
type MembershipLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// MembershipModel computes the monthly value of one membership kind
// from the user's inputs (spending, order counts)
type MembershipModel interface {
	// Name identifies the model for dispatch
	Name() string

	// Evaluate computes the membership's value against its price
	Evaluate(inputs map[string]float64, price decimal.Decimal) MembershipResult
}

// TieredCashback pays BaseRate up to Threshold of monthly spending
// and OverflowRate on the remainder
type TieredCashback struct {
	ModelName    string
	Threshold    decimal.Decimal
	BaseRate     decimal.Decimal
	OverflowRate decimal.Decimal
	Label        string
}

// Name identifies the model
func (m TieredCashback) Name() string { return m.ModelName }

// Evaluate computes tiered cashback value
func (m TieredCashback) Evaluate(inputs map[string]float64, price decimal.Decimal) MembershipResult {
	spending := decimal.NewFromFloat(inputs["monthly_spending"])
	if spending.IsNegative() {
		spending = decimal.Zero
	}

	var savings decimal.Decimal
	if spending.LessThanOrEqual(m.Threshold) {
		savings = spending.Mul(m.BaseRate)
	} else {
		savings = m.Threshold.Mul(m.BaseRate).
			Add(spending.Sub(m.Threshold).Mul(m.OverflowRate))
	}
	savings = savings.Round(2)

	return membershipResult(savings, price, m.Label)
}

// PerOrderFee values a membership that waives a fixed fee per order
type PerOrderFee struct {
	ModelName string
	Fee       decimal.Decimal
	Label     string
}

// Name identifies the model
func (m PerOrderFee) Name() string { return m.ModelName }

// Evaluate computes waived-fee value
func (m PerOrderFee) Evaluate(inputs map[string]float64, price decimal.Decimal) MembershipResult {
	orders := inputs["order_count"]
	if orders < 0 {
		orders = 0
	}
	savings := m.Fee.Mul(decimal.NewFromFloat(orders)).Round(2)
	return membershipResult(savings, price, m.Label)
}

func membershipResult(savings, price decimal.Decimal, label string) MembershipResult {
	roi := decimal.Zero
	if price.IsPositive() {
		roi = savings.Div(price).Mul(decimal.NewFromInt(100)).Round(1)
	}
	return MembershipResult{
		Savings:    savings,
		ROIPercent: roi,
		Breakdown:  []MembershipLine{{Label: label, Amount: savings}},
		Verdict:    membershipVerdict(roi),
	}
}

// Verdict bands: >=200% excellent, >=100% good, >=80% break-even
func membershipVerdict(roiPercent decimal.Decimal) MembershipVerdict {
	switch {
	case roiPercent.GreaterThanOrEqual(decimal.NewFromInt(200)):
		return VerdictExcellent
	case roiPercent.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return VerdictGood
	case roiPercent.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return VerdictBreakEven
	default:
		return VerdictLoss
	}
}

// defaultMembershipModels covers the well-known paid memberships
var defaultMembershipModels = []MembershipModel{
	TieredCashback{
		ModelName:    "toss_prime",
		Threshold:    decimal.NewFromInt(1000000),
		BaseRate:     decimal.NewFromFloat(0.04),
		OverflowRate: decimal.NewFromFloat(0.01),
		Label:        "cashback earned",
	},
	TieredCashback{
		ModelName:    "naver_plus",
		Threshold:    decimal.NewFromInt(1000000000),
		BaseRate:     decimal.NewFromFloat(0.04),
		OverflowRate: decimal.NewFromFloat(0.04),
		Label:        "points earned",
	},
	PerOrderFee{ModelName: "baemin_club", Fee: decimal.NewFromInt(3000), Label: "delivery fees saved"},
	PerOrderFee{ModelName: "coupang_wow", Fee: decimal.NewFromInt(3000), Label: "shipping fees saved"},
	PerOrderFee{ModelName: "ssg_membership", Fee: decimal.NewFromInt(3000), Label: "shipping fees saved"},
	PerOrderFee{ModelName: "kurly_pass", Fee: decimal.NewFromInt(3000), Label: "shipping fees saved"},
}

// EvaluateMembership dispatches to the named membership model.
// Returns false for unknown names rather than erroring.
func EvaluateMembership(name string, inputs map[string]float64, price decimal.Decimal) (MembershipResult, bool) {
	for _, m := range defaultMembershipModels {
		if m.Name() == name {
			return m.Evaluate(inputs, price), true
		}
	}
	return MembershipResult{}, false
}
