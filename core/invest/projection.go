// Package invest projects monthly savings as invested capital under
// fixed annual-return profiles: month-by-month compounding with the
// contribution made at the start of each month.
package invest

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"subwise/core/types"
)

// Fixed annual return profiles
const (
	// RateDeposit approximates a savings account
	RateDeposit = 0.035

	// RateBroadIndex approximates a broad domestic index
	RateBroadIndex = 0.085

	// RateGlobalIndex approximates a global index
	RateGlobalIndex = 0.105
)

// MaxChartPoints bounds the downsampled series length
const MaxChartPoints = 20

// MonthlyRate converts an annual rate to the effective monthly rate:
// (1+r)^(1/12) - 1
func MonthlyRate(annualRate float64) decimal.Decimal {
	return decimal.NewFromFloat(math.Pow(1+annualRate, 1.0/12) - 1)
}

// CompoundReturn simulates investing monthlyAmount at the start of
// every month for the given horizon, compounding at annualRate.
// The result is rounded to the minor unit.
func CompoundReturn(monthlyAmount decimal.Decimal, annualRate float64, years int) decimal.Decimal {
	months := years * 12
	growth := decimal.NewFromInt(1).Add(MonthlyRate(annualRate))

	balance := decimal.Zero
	for m := 0; m < months; m++ {
		balance = balance.Add(monthlyAmount).Mul(growth)
	}
	return balance.Round(2)
}

// Simulate produces end balances for all three profiles over the
// 1, 3 and 5 year horizons
func Simulate(monthlyAmount decimal.Decimal) types.InvestmentSimulation {
	return types.InvestmentSimulation{
		Deposit1Y: CompoundReturn(monthlyAmount, RateDeposit, 1),
		Deposit3Y: CompoundReturn(monthlyAmount, RateDeposit, 3),
		Deposit5Y: CompoundReturn(monthlyAmount, RateDeposit, 5),

		BroadIndex1Y: CompoundReturn(monthlyAmount, RateBroadIndex, 1),
		BroadIndex3Y: CompoundReturn(monthlyAmount, RateBroadIndex, 3),
		BroadIndex5Y: CompoundReturn(monthlyAmount, RateBroadIndex, 5),

		GlobalIndex1Y: CompoundReturn(monthlyAmount, RateGlobalIndex, 1),
		GlobalIndex3Y: CompoundReturn(monthlyAmount, RateGlobalIndex, 3),
		GlobalIndex5Y: CompoundReturn(monthlyAmount, RateGlobalIndex, 5),
	}
}

// Series produces the full monthly time series from month 0 through
// years*12. Balances are rounded at each reported point; the
// underlying accumulation stays precise.
func Series(monthlyAmount decimal.Decimal, years int) []types.InvestmentPoint {
	totalMonths := years * 12
	one := decimal.NewFromInt(1)
	depositGrowth := one.Add(MonthlyRate(RateDeposit))
	broadGrowth := one.Add(MonthlyRate(RateBroadIndex))
	globalGrowth := one.Add(MonthlyRate(RateGlobalIndex))

	points := make([]types.InvestmentPoint, 0, totalMonths+1)
	points = append(points, types.InvestmentPoint{
		Month:       0,
		Label:       "start",
		Deposit:     decimal.Zero,
		BroadIndex:  decimal.Zero,
		GlobalIndex: decimal.Zero,
		Principal:   decimal.Zero,
	})

	deposit, broad, global := decimal.Zero, decimal.Zero, decimal.Zero
	for m := 1; m <= totalMonths; m++ {
		deposit = deposit.Add(monthlyAmount).Mul(depositGrowth)
		broad = broad.Add(monthlyAmount).Mul(broadGrowth)
		global = global.Add(monthlyAmount).Mul(globalGrowth)

		points = append(points, types.InvestmentPoint{
			Month:       m,
			Label:       monthLabel(m),
			Deposit:     deposit.Round(2),
			BroadIndex:  broad.Round(2),
			GlobalIndex: global.Round(2),
			Principal:   monthlyAmount.Mul(decimal.NewFromInt(int64(m))).Round(2),
		})
	}
	return points
}

// ChartSeries is Series downsampled for display: every Nth point,
// always keeping the first and last
func ChartSeries(monthlyAmount decimal.Decimal, years int) []types.InvestmentPoint {
	return Downsample(Series(monthlyAmount, years), MaxChartPoints)
}

// Downsample thins a series to at most maxPoints, keeping the first
// and last point. The underlying computation is unchanged.
func Downsample(points []types.InvestmentPoint, maxPoints int) []types.InvestmentPoint {
	if maxPoints < 2 || len(points) <= maxPoints {
		return points
	}

	step := (len(points) + maxPoints - 2) / (maxPoints - 1)
	out := make([]types.InvestmentPoint, 0, maxPoints)
	for i := 0; i < len(points)-1; i += step {
		out = append(out, points[i])
	}
	out = append(out, points[len(points)-1])
	return out
}

func monthLabel(m int) string {
	if m%12 == 0 {
		return fmt.Sprintf("%dy", m/12)
	}
	return fmt.Sprintf("%dmo", m)
}
