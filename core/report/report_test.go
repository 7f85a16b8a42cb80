package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subwise/core/catalog"
	"subwise/core/types"
)

func fixtureSubscriptions() []types.Subscription {
	subs := []types.Subscription{
		{ID: "streamflix", Name: "StreamFlix", Category: types.CategoryVideo,
			Cycle: types.CycleMonthly, Price: decimal.NewFromInt(17000), Status: types.StatusActive},
		{ID: "tunebox", Name: "TuneBox", Category: types.CategoryMusic,
			Cycle: types.CycleMonthly, Price: decimal.NewFromInt(11000), Status: types.StatusActive},
		{ID: "shopclub", Name: "ShopClub", Category: types.CategoryShopping,
			Cycle: types.CycleMonthly, Price: decimal.NewFromInt(13500), Status: types.StatusActive},
		{ID: "oldnews", Name: "OldNews", Category: types.CategoryReading,
			Cycle: types.CycleMonthly, Price: decimal.NewFromInt(9000), Status: types.StatusCancelled},
	}
	for i := range subs {
		subs[i].Normalize()
	}
	return subs
}

func fixtureObservations() []types.UsageObservation {
	return []types.UsageObservation{
		{SubscriptionID: "streamflix", Metric: types.MetricTime, Value: 0},
		{SubscriptionID: "tunebox", Metric: types.MetricTime, Value: 600},
		{SubscriptionID: "shopclub", Metric: types.MetricCount, Value: 1},
	}
}

func fixtureCatalog() *catalog.Catalog {
	cat := catalog.New()
	cat.Presets["TuneBox"] = catalog.ServicePreset{
		Service: "TuneBox",
		FamilyPlan: &catalog.FamilyPlan{
			Name: "Family", Price: decimal.NewFromInt(16000), MaxMembers: 6,
		},
	}
	cat.Discounts = []catalog.DiscountEvent{{
		Title:          "Card cashback",
		Kind:           catalog.DiscountCard,
		Provider:       "AnyCard",
		TargetServices: []string{"TuneBox"},
		Amount:         decimal.NewFromInt(2000),
	}}
	return cat
}

func TestGenerateEndToEnd(t *testing.T) {
	g := NewGenerator(fixtureCatalog())
	analyses, rep := g.GenerateFromUsage(fixtureSubscriptions(), fixtureObservations())

	require.Len(t, analyses, 3)

	byID := make(map[string]types.ROIAnalysis)
	for _, a := range analyses {
		byID[a.SubscriptionID] = a
	}
	assert.Equal(t, types.GradeF, byID["streamflix"].Grade)
	assert.Equal(t, types.ActionCancel, byID["streamflix"].Recommendation)
	assert.Equal(t, types.GradeA, byID["tunebox"].Grade)
	assert.Equal(t, types.GradeD, byID["shopclub"].Grade)

	// expected survivors: cancel StreamFlix 17,000; cancel ShopClub
	// 13,500; share TuneBox 8,333 (16,000/6 rounded up, so 11,000-2,667).
	// The 2,000 TuneBox discount loses to the sharing item.
	require.Len(t, rep.SavingsBreakdown, 3)
	assert.Equal(t, "38833", rep.MonthlySavings.String())
	assert.Equal(t, "465996", rep.YearlySavings.String())

	assert.Equal(t, "StreamFlix", rep.SavingsBreakdown[0].SubscriptionName)
	assert.Equal(t, types.SavingsCancel, rep.SavingsBreakdown[0].Action)
	assert.Equal(t, "ShopClub", rep.SavingsBreakdown[1].SubscriptionName)
	assert.Equal(t, "TuneBox", rep.SavingsBreakdown[2].SubscriptionName)
	assert.Equal(t, types.SavingsShare, rep.SavingsBreakdown[2].Action)

	assert.NotEmpty(t, rep.PurchaseAlternatives)
	assert.True(t, rep.Investment.GlobalIndex5Y.GreaterThan(rep.Investment.Deposit5Y))
	assert.Contains(t, rep.Summary, "3 ways")
	assert.Contains(t, rep.Summary, "38,833")
}

func TestGenerateCapInvariant(t *testing.T) {
	g := NewGenerator(fixtureCatalog())
	subs := fixtureSubscriptions()
	analyses, rep := g.GenerateFromUsage(subs, fixtureObservations())
	_ = analyses

	spend := types.TotalMonthlySpend(types.Billable(subs))
	assert.True(t, rep.MonthlySavings.LessThanOrEqual(spend),
		"monthly savings %s exceed spend %s", rep.MonthlySavings, spend)

	total := decimal.Zero
	for _, item := range rep.SavingsBreakdown {
		if item.Advisory {
			continue
		}
		assert.True(t, item.SavingsPerMonth.LessThanOrEqual(item.CurrentMonthlyPrice))
		total = total.Add(item.SavingsPerMonth)
	}
	assert.True(t, total.Equal(rep.MonthlySavings))
}

func TestGenerateIsIdempotent(t *testing.T) {
	g := NewGenerator(fixtureCatalog())

	_, first := g.GenerateFromUsage(fixtureSubscriptions(), fixtureObservations())
	for i := 0; i < 5; i++ {
		_, again := g.GenerateFromUsage(fixtureSubscriptions(), fixtureObservations())
		require.Equal(t, first, again)
	}
}

func TestGenerateEmptyPortfolio(t *testing.T) {
	g := NewGenerator(catalog.New())

	for _, subs := range [][]types.Subscription{
		nil,
		{{ID: "x", Name: "X", Status: types.StatusCancelled, Price: decimal.NewFromInt(9000)}},
	} {
		_, rep := g.GenerateFromUsage(subs, nil)
		assert.True(t, rep.MonthlySavings.IsZero())
		assert.Empty(t, rep.SavingsBreakdown)
		assert.Empty(t, rep.PurchaseAlternatives)
		assert.Contains(t, rep.Summary, "no active subscriptions")
	}
}

func TestBundlePreferredOverIndividualCancellations(t *testing.T) {
	// two unused subscriptions at 15,000 each would suggest 30,000 in
	// cancellations, but a 12,000 bundle covering both wins the claim
	cat := catalog.New()
	cat.Bundles = []catalog.BundleDeal{{
		Name:             "DuoPack",
		Provider:         "MegaCorp",
		IncludedServices: []string{"StreamFlix", "TuneBox"},
		Price:            decimal.NewFromInt(12000),
	}}

	subs := []types.Subscription{
		{ID: "streamflix", Name: "StreamFlix", Category: types.CategoryVideo,
			Cycle: types.CycleMonthly, Price: decimal.NewFromInt(15000), Status: types.StatusActive},
		{ID: "tunebox", Name: "TuneBox", Category: types.CategoryMusic,
			Cycle: types.CycleMonthly, Price: decimal.NewFromInt(15000), Status: types.StatusActive},
	}
	for i := range subs {
		subs[i].Normalize()
	}
	observations := []types.UsageObservation{
		{SubscriptionID: "streamflix", Metric: types.MetricTime, Value: 0},
		{SubscriptionID: "tunebox", Metric: types.MetricTime, Value: 0},
	}

	g := NewGenerator(cat)
	_, rep := g.GenerateFromUsage(subs, observations)

	require.Len(t, rep.SavingsBreakdown, 1)
	assert.Equal(t, types.SavingsUseBundle, rep.SavingsBreakdown[0].Action)
	assert.Equal(t, "18000", rep.MonthlySavings.String())
	assert.True(t, rep.MonthlySavings.LessThanOrEqual(decimal.NewFromInt(30000)))
}

func TestGenerateWithoutUsageStillFindsCatalogSavings(t *testing.T) {
	// no observations: no ROI analyses, but sharing and discounts
	// still apply
	g := NewGenerator(fixtureCatalog())
	analyses, rep := g.GenerateFromUsage(fixtureSubscriptions(), nil)

	assert.Empty(t, analyses)
	require.Len(t, rep.SavingsBreakdown, 1)
	assert.Equal(t, "TuneBox", rep.SavingsBreakdown[0].SubscriptionName)
	assert.Equal(t, types.SavingsShare, rep.SavingsBreakdown[0].Action)
}

func TestWellOptimizedSummary(t *testing.T) {
	g := NewGenerator(catalog.New())
	subs := []types.Subscription{{
		ID: "tunebox", Name: "TuneBox", Category: types.CategoryMusic,
		Cycle: types.CycleMonthly, Price: decimal.NewFromInt(11000), Status: types.StatusActive,
	}}
	subs[0].Normalize()
	observations := []types.UsageObservation{
		{SubscriptionID: "tunebox", Metric: types.MetricTime, Value: 600},
	}

	_, rep := g.GenerateFromUsage(subs, observations)
	assert.True(t, rep.MonthlySavings.IsZero())
	assert.Contains(t, rep.Summary, "well optimized")
}

func TestAlternativesCountsAndOrder(t *testing.T) {
	yearly := decimal.NewFromInt(465996)
	alts := Alternatives(yearly, DefaultPurchaseCatalog())
	require.NotEmpty(t, alts)

	byName := make(map[string]int)
	for _, a := range alts {
		byName[a.Name] = a.Count
	}
	assert.Equal(t, 93, byName["coffee americano"])
	assert.Equal(t, 31, byName["movie ticket"])
	assert.Equal(t, 1, byName["wireless earbuds"])
	_, tooExpensive := byName["flagship phone"]
	assert.False(t, tooExpensive)

	for i := 1; i < len(alts); i++ {
		assert.GreaterOrEqual(t, alts[i-1].Count, alts[i].Count)
	}
}

func TestAlternativesZeroSavings(t *testing.T) {
	assert.Empty(t, Alternatives(decimal.Zero, DefaultPurchaseCatalog()))
	assert.Empty(t, Alternatives(decimal.NewFromInt(-100), DefaultPurchaseCatalog()))
}

func TestChartSeriesFromGenerator(t *testing.T) {
	g := NewGenerator(catalog.New())
	points := g.ChartSeries(decimal.NewFromInt(38833), 5)

	require.NotEmpty(t, points)
	assert.LessOrEqual(t, len(points), 20)
	assert.Equal(t, 0, points[0].Month)
	assert.Equal(t, 60, points[len(points)-1].Month)
}
