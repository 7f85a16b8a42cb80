// Package roi grades subscriptions by observed usage and resolves a
// recommended action per subscription. Pure computation: no I/O, no
// shared state, no errors - malformed input degrades to grade F.
package roi

import (
	"fmt"

	"github.com/shopspring/decimal"

	"subwise/core/types"
)

// WeeksPerMonth is the average number of weeks in a month
var WeeksPerMonth = decimal.NewFromFloat(4.33)

// Grading thresholds, currency per normalized unit. A grade applies
// when efficiency is strictly below its threshold.
var (
	timeThresholdA = decimal.NewFromInt(600)
	timeThresholdB = decimal.NewFromInt(1800)
	timeThresholdC = decimal.NewFromInt(4200)

	countThresholdA = decimal.NewFromInt(500)
	countThresholdB = decimal.NewFromInt(1500)
	countThresholdC = decimal.NewFromInt(3000)
)

// GradeUsage converts a raw usage value into a grade and a
// cost-efficiency figure for the given metric. A non-positive usage
// value yields grade F with zero efficiency; division never happens
// on a non-positive denominator.
func GradeUsage(metric types.MetricType, monthlyPrice decimal.Decimal, usageValue float64) (types.Grade, decimal.Decimal) {
	if usageValue <= 0 {
		return types.GradeF, decimal.Zero
	}

	usage := decimal.NewFromFloat(usageValue)

	switch metric {
	case types.MetricTime:
		// usage is weekly minutes; normalize to monthly hours
		monthlyHours := usage.Mul(WeeksPerMonth).Div(decimal.NewFromInt(60))
		if !monthlyHours.IsPositive() {
			return types.GradeF, decimal.Zero
		}
		costPerHour := monthlyPrice.Div(monthlyHours)
		return gradeByCost(costPerHour, timeThresholdA, timeThresholdB, timeThresholdC), costPerHour

	case types.MetricCount:
		// usage is monthly occurrences
		costPerUse := monthlyPrice.Div(usage)
		return gradeByCost(costPerUse, countThresholdA, countThresholdB, countThresholdC), costPerUse

	case types.MetricFrequency:
		// usage is days per week; the grade is driven by frequency
		// itself, efficiency is reported as cost per day of use
		costPerDay := monthlyPrice.Div(usage.Mul(WeeksPerMonth))
		return gradeByFrequency(usageValue), costPerDay

	default:
		return types.GradeF, decimal.Zero
	}
}

func gradeByCost(cost, a, b, c decimal.Decimal) types.Grade {
	switch {
	case cost.LessThan(a):
		return types.GradeA
	case cost.LessThan(b):
		return types.GradeB
	case cost.LessThan(c):
		return types.GradeC
	default:
		return types.GradeD
	}
}

func gradeByFrequency(daysPerWeek float64) types.Grade {
	switch {
	case daysPerWeek >= 5:
		return types.GradeA
	case daysPerWeek >= 3:
		return types.GradeB
	case daysPerWeek >= 1:
		return types.GradeC
	default:
		return types.GradeD
	}
}

// UsageLabel renders a usage value with its metric unit
func UsageLabel(metric types.MetricType, value float64) string {
	switch metric {
	case types.MetricTime:
		hours := value / 60
		if hours < 1 {
			return fmt.Sprintf("%.0f min/week", value)
		}
		return fmt.Sprintf("%.1f h/week", hours)
	case types.MetricCount:
		return fmt.Sprintf("%.0f uses/month", value)
	case types.MetricFrequency:
		return fmt.Sprintf("%.1f days/week", value)
	default:
		return fmt.Sprintf("%.1f", value)
	}
}

// EfficiencyLabel renders a cost-efficiency figure with its unit
func EfficiencyLabel(metric types.MetricType, cost decimal.Decimal) string {
	if !cost.IsPositive() {
		return "-"
	}
	unit := "unit"
	switch metric {
	case types.MetricTime:
		unit = "hour"
	case types.MetricCount:
		unit = "use"
	case types.MetricFrequency:
		unit = "day"
	}
	return fmt.Sprintf("%s/%s", types.FormatMoney(cost.Round(0)), unit)
}
