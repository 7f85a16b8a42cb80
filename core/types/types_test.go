package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDerivesMonthlyPrice(t *testing.T) {
	monthly := Subscription{Cycle: CycleMonthly, Price: decimal.NewFromInt(17000)}
	monthly.Normalize()
	assert.Equal(t, "17000", monthly.MonthlyPrice.String())

	yearly := Subscription{Cycle: CycleYearly, Price: decimal.NewFromInt(120000)}
	yearly.Normalize()
	assert.Equal(t, "10000", yearly.MonthlyPrice.String())

	odd := Subscription{Cycle: CycleYearly, Price: decimal.NewFromInt(100000)}
	odd.Normalize()
	assert.Equal(t, "8333.33", odd.MonthlyPrice.String())

	negative := Subscription{Cycle: CycleMonthly, Price: decimal.NewFromInt(-5)}
	negative.Normalize()
	assert.True(t, negative.MonthlyPrice.IsZero())
}

func TestBillableFiltersLifecycle(t *testing.T) {
	subs := []Subscription{
		{ID: "a", Status: StatusActive},
		{ID: "b", Status: StatusTrial},
		{ID: "c", Status: StatusPaused},
		{ID: "d", Status: StatusCancelled},
	}
	got := Billable(subs)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestCategoryMetricTable(t *testing.T) {
	assert.Equal(t, MetricTime, CategoryVideo.Metric())
	assert.Equal(t, MetricTime, CategoryMusic.Metric())
	assert.Equal(t, MetricTime, CategoryGaming.Metric())
	assert.Equal(t, MetricCount, CategoryShopping.Metric())
	assert.Equal(t, MetricFrequency, CategoryCloud.Metric())
	assert.Equal(t, MetricFrequency, CategoryProductivity.Metric())
	assert.Equal(t, MetricFrequency, CategoryReading.Metric())
	assert.Equal(t, MetricFrequency, CategoryOther.Metric())
}

func TestGradeOrdering(t *testing.T) {
	assert.True(t, GradeA.BetterOrEqual(GradeB))
	assert.True(t, GradeB.BetterOrEqual(GradeB))
	assert.False(t, GradeF.BetterOrEqual(GradeD))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "17,000", FormatMoney(decimal.NewFromInt(17000)))
	assert.Equal(t, "1,234.50", FormatMoney(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "950", FormatMoney(decimal.NewFromInt(950)))
	assert.Equal(t, "-2,500", FormatMoney(decimal.NewFromInt(-2500)))
	assert.Equal(t, "0", FormatMoney(decimal.Zero))
	assert.Equal(t, "1,000,000", FormatMoney(decimal.NewFromInt(1000000)))
}
