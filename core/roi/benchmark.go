// Package roi - usage benchmarking against category averages
package roi

import (
	"fmt"

	"subwise/core/types"
)

// categoryAverageMinutes is the reference weekly usage (minutes) per
// time-measured category
var categoryAverageMinutes = map[types.Category]float64{
	types.CategoryVideo:  420,
	types.CategoryMusic:  360,
	types.CategoryGaming: 300,
}

// Benchmark classification bands, percent of the category average
const (
	benchmarkHeavyPct   = 150
	benchmarkAveragePct = 70
	benchmarkBelowPct   = 30
)

// Benchmark compares weekly usage minutes against the category
// average. Returns false when the category has no time benchmark.
func Benchmark(category types.Category, weeklyMinutes float64) (types.BenchmarkResult, bool) {
	avg, ok := categoryAverageMinutes[category]
	if !ok || avg <= 0 {
		return types.BenchmarkResult{}, false
	}

	if weeklyMinutes < 0 {
		weeklyMinutes = 0
	}
	pct := weeklyMinutes / avg * 100

	var level types.BenchmarkLevel
	var feedback string
	switch {
	case pct >= benchmarkHeavyPct:
		level = types.BenchmarkHeavy
		feedback = "You use this far more than the average subscriber."
	case pct >= benchmarkAveragePct:
		level = types.BenchmarkAverage
		feedback = "Your usage is in line with the average subscriber."
	case pct >= benchmarkBelowPct:
		level = types.BenchmarkBelow
		feedback = "You use this less than the average subscriber."
	default:
		level = types.BenchmarkMinimal
		feedback = "You hardly use this at all."
	}

	return types.BenchmarkResult{
		Level:            level,
		PercentOfAverage: pct,
		AverageMinutes:   avg,
		UserMinutes:      weeklyMinutes,
		Feedback:         fmt.Sprintf("%s (%.0f%% of the %s average)", feedback, pct, category),
	}, true
}
