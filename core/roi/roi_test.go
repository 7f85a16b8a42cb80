package roi

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subwise/core/catalog"
	"subwise/core/types"
)

func sub(name string, monthly int64, category types.Category) types.Subscription {
	s := types.Subscription{
		ID:       strings.ToLower(name),
		Name:     name,
		Category: category,
		Cycle:    types.CycleMonthly,
		Price:    decimal.NewFromInt(monthly),
		Status:   types.StatusActive,
	}
	s.Normalize()
	return s
}

func TestZeroUsageIsGradeF(t *testing.T) {
	grade, eff := GradeUsage(types.MetricTime, decimal.NewFromInt(17000), 0)
	assert.Equal(t, types.GradeF, grade)
	assert.True(t, eff.IsZero())

	grade, eff = GradeUsage(types.MetricCount, decimal.NewFromInt(5000), -3)
	assert.Equal(t, types.GradeF, grade)
	assert.True(t, eff.IsZero())
}

func TestTimeGradeThresholds(t *testing.T) {
	// weekly minutes chosen so cost/hour lands in each band:
	// monthly hours = minutes * 4.33 / 60
	cases := []struct {
		price   int64
		minutes float64
		want    types.Grade
	}{
		{17000, 600, types.GradeA},  // 43.3 h -> ~393/h
		{17000, 180, types.GradeB},  // 12.99 h -> ~1,309/h
		{17000, 60, types.GradeC},   // 4.33 h -> ~3,926/h
		{17000, 10, types.GradeD},   // 0.72 h -> ~23,557/h
		{17000, 0, types.GradeF},
	}
	for _, tc := range cases {
		grade, _ := GradeUsage(types.MetricTime, decimal.NewFromInt(tc.price), tc.minutes)
		assert.Equal(t, tc.want, grade, "price=%d minutes=%v", tc.price, tc.minutes)
	}
}

func TestCountGradeThresholds(t *testing.T) {
	cases := []struct {
		price int64
		count float64
		want  types.Grade
	}{
		{4000, 10, types.GradeA}, // 400/use
		{4000, 4, types.GradeB},  // 1,000/use
		{4000, 2, types.GradeC},  // 2,000/use
		{13500, 1, types.GradeD}, // 13,500/use
	}
	for _, tc := range cases {
		grade, _ := GradeUsage(types.MetricCount, decimal.NewFromInt(tc.price), tc.count)
		assert.Equal(t, tc.want, grade, "price=%d count=%v", tc.price, tc.count)
	}
}

func TestFrequencyGradeIsDrivenByDays(t *testing.T) {
	for days, want := range map[float64]types.Grade{
		7: types.GradeA, 5: types.GradeA,
		4: types.GradeB, 3: types.GradeB,
		2: types.GradeC, 1: types.GradeC,
		0.5: types.GradeD,
	} {
		grade, eff := GradeUsage(types.MetricFrequency, decimal.NewFromInt(10000), days)
		assert.Equal(t, want, grade, "days=%v", days)
		assert.True(t, eff.IsPositive())
	}

	grade, _ := GradeUsage(types.MetricFrequency, decimal.NewFromInt(10000), 0)
	assert.Equal(t, types.GradeF, grade)
}

func TestGradeMonotonicityForTime(t *testing.T) {
	// decreasing cost per hour (more minutes) never worsens the grade
	price := decimal.NewFromInt(20000)
	prev := types.GradeF
	for minutes := float64(5); minutes <= 1200; minutes += 5 {
		grade, _ := GradeUsage(types.MetricTime, price, minutes)
		assert.True(t, grade.BetterOrEqual(prev) || prev.BetterOrEqual(grade))
		if prev != types.GradeF {
			assert.True(t, grade.BetterOrEqual(prev),
				"grade worsened from %s to %s at %v minutes", prev, grade, minutes)
		}
		prev = grade
	}
}

func TestUnusedSubscriptionScenario(t *testing.T) {
	// 17,000/month, time metric, 0 minutes/week
	s := sub("StreamFlix", 17000, types.CategoryVideo)
	analysis := Analyze(s, types.MetricTime, 0, false)

	assert.Equal(t, types.GradeF, analysis.Grade)
	assert.Equal(t, types.ActionCancel, analysis.Recommendation)
	assert.Equal(t, "17000", analysis.PotentialSavings.String())
	assert.Contains(t, analysis.Reason, "17,000")
}

func TestSingleUseMembershipScenario(t *testing.T) {
	// 13,500/month, count metric, 1 use/month -> 13,500/use, grade D
	s := sub("ShopClub", 13500, types.CategoryShopping)
	analysis := Analyze(s, types.MetricCount, 1, false)

	assert.Equal(t, types.GradeD, analysis.Grade)
	assert.Equal(t, types.ActionCancel, analysis.Recommendation)
	assert.Contains(t, analysis.Reason, "per-use payment")
	assert.Equal(t, "13500", analysis.PotentialSavings.String())
	assert.Equal(t, "13500", analysis.CostEfficiency.String())
}

func TestRecommendationBranches(t *testing.T) {
	s := sub("TuneBox", 10000, types.CategoryMusic)

	action, _ := Recommend(types.GradeA, s, types.MetricTime, true)
	assert.Equal(t, types.ActionKeep, action)

	action, _ = Recommend(types.GradeB, s, types.MetricTime, true)
	assert.Equal(t, types.ActionShare, action)

	action, _ = Recommend(types.GradeB, s, types.MetricTime, false)
	assert.Equal(t, types.ActionKeep, action)

	action, _ = Recommend(types.GradeC, s, types.MetricTime, true)
	assert.Equal(t, types.ActionShare, action)

	action, reason := Recommend(types.GradeC, s, types.MetricCount, false)
	assert.Equal(t, types.ActionReview, action)
	assert.Contains(t, reason, "per order")

	action, _ = Recommend(types.GradeC, s, types.MetricTime, false)
	assert.Equal(t, types.ActionDowngrade, action)

	action, _ = Recommend(types.GradeD, s, types.MetricTime, false)
	assert.Equal(t, types.ActionCancel, action)

	action, _ = Recommend(types.GradeF, s, types.MetricTime, true)
	assert.Equal(t, types.ActionCancel, action)
}

func TestPotentialSavingsFactors(t *testing.T) {
	price := decimal.NewFromInt(10000)

	assert.Equal(t, "10000", PotentialSavings(types.ActionCancel, price).String())
	assert.Equal(t, "3000", PotentialSavings(types.ActionDowngrade, price).String())
	assert.Equal(t, "5000", PotentialSavings(types.ActionShare, price).String())
	assert.True(t, PotentialSavings(types.ActionKeep, price).IsZero())
	assert.True(t, PotentialSavings(types.ActionReview, price).IsZero())
}

func TestPotentialSavingsNeverExceedsPrice(t *testing.T) {
	price := decimal.NewFromFloat(9999.99)
	for _, action := range []types.Action{
		types.ActionKeep, types.ActionReview, types.ActionDowngrade,
		types.ActionShare, types.ActionCancel,
	} {
		got := PotentialSavings(action, price)
		assert.True(t, got.LessThanOrEqual(price), "action %s", action)
	}
}

func TestAnalyzeAllSkipsWithoutUsage(t *testing.T) {
	subs := []types.Subscription{
		sub("StreamFlix", 17000, types.CategoryVideo),
		sub("TuneBox", 10000, types.CategoryMusic),
		sub("Paused", 5000, types.CategoryOther),
	}
	subs[2].Status = types.StatusPaused

	got := AnalyzeAll(subs, nil, catalog.New())
	assert.Empty(t, got)

	observations := []types.UsageObservation{
		{SubscriptionID: "streamflix", Metric: types.MetricTime, Value: 300},
	}
	got = AnalyzeAll(subs, observations, catalog.New())
	require.Len(t, got, 1)
	assert.Equal(t, "streamflix", got[0].SubscriptionID)
}

func TestAnalyzeAllUsesSharingAvailability(t *testing.T) {
	cat := catalog.New()
	cat.Presets["TuneBox"] = catalog.ServicePreset{
		Service: "TuneBox",
		FamilyPlan: &catalog.FamilyPlan{
			Name: "Family", Price: decimal.NewFromInt(16000), MaxMembers: 6,
		},
	}

	s := sub("TuneBox", 10000, types.CategoryMusic)
	// 2 hours a week lands in grade B territory for 10,000/month
	observations := []types.UsageObservation{
		{SubscriptionID: "tunebox", Metric: types.MetricTime, Value: 120},
	}

	got := AnalyzeAll([]types.Subscription{s}, observations, cat)
	require.Len(t, got, 1)
	assert.Equal(t, types.ActionShare, got[0].Recommendation)

	shared := s
	shared.IsShared = true
	got = AnalyzeAll([]types.Subscription{shared}, observations, cat)
	require.Len(t, got, 1)
	assert.Equal(t, types.ActionKeep, got[0].Recommendation)
}
