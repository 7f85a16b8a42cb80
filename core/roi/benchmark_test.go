package roi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subwise/core/types"
)

func TestBenchmarkBands(t *testing.T) {
	cases := []struct {
		minutes float64
		want    types.BenchmarkLevel
	}{
		{700, types.BenchmarkHeavy},   // 167% of 420
		{420, types.BenchmarkAverage}, // 100%
		{300, types.BenchmarkAverage}, // 71%
		{200, types.BenchmarkBelow},   // 48%
		{60, types.BenchmarkMinimal},  // 14%
		{0, types.BenchmarkMinimal},
	}
	for _, tc := range cases {
		got, ok := Benchmark(types.CategoryVideo, tc.minutes)
		require.True(t, ok)
		assert.Equal(t, tc.want, got.Level, "minutes=%v pct=%.0f", tc.minutes, got.PercentOfAverage)
		assert.Equal(t, float64(420), got.AverageMinutes)
	}
}

func TestBenchmarkUnknownCategory(t *testing.T) {
	_, ok := Benchmark(types.CategoryShopping, 100)
	assert.False(t, ok)

	_, ok = Benchmark(types.CategoryOther, 100)
	assert.False(t, ok)
}

func TestBenchmarkClampsNegativeUsage(t *testing.T) {
	got, ok := Benchmark(types.CategoryMusic, -50)
	require.True(t, ok)
	assert.Equal(t, types.BenchmarkMinimal, got.Level)
	assert.Equal(t, float64(0), got.UserMinutes)
}

func TestBenchmarkFeedbackMentionsCategory(t *testing.T) {
	got, ok := Benchmark(types.CategoryGaming, 450)
	require.True(t, ok)
	assert.Contains(t, got.Feedback, "gaming")
	assert.Contains(t, got.Feedback, "150%")
}
