package roi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTieredCashbackUnderThreshold(t *testing.T) {
	price := decimal.NewFromInt(5900)
	inputs := map[string]float64{"monthly_spending": 500000}

	got, ok := EvaluateMembership("toss_prime", inputs, price)
	require.True(t, ok)
	// 500,000 * 4% = 20,000
	assert.Equal(t, "20000", got.Savings.String())
	assert.Equal(t, VerdictExcellent, got.Verdict)
	require.Len(t, got.Breakdown, 1)
	assert.Equal(t, "cashback earned", got.Breakdown[0].Label)
}

func TestTieredCashbackOverThreshold(t *testing.T) {
	price := decimal.NewFromInt(5900)
	inputs := map[string]float64{"monthly_spending": 1500000}

	got, ok := EvaluateMembership("toss_prime", inputs, price)
	require.True(t, ok)
	// 1,000,000 * 4% + 500,000 * 1% = 45,000
	assert.Equal(t, "45000", got.Savings.String())
}

func TestTieredCashbackNegativeSpending(t *testing.T) {
	got, ok := EvaluateMembership("toss_prime", map[string]float64{"monthly_spending": -100}, decimal.NewFromInt(5900))
	require.True(t, ok)
	assert.True(t, got.Savings.IsZero())
	assert.Equal(t, VerdictLoss, got.Verdict)
}

func TestPerOrderFeeModel(t *testing.T) {
	price := decimal.NewFromInt(4990)

	got, ok := EvaluateMembership("coupang_wow", map[string]float64{"order_count": 4}, price)
	require.True(t, ok)
	// 4 orders * 3,000 waived = 12,000
	assert.Equal(t, "12000", got.Savings.String())
	assert.Equal(t, VerdictExcellent, got.Verdict)

	got, ok = EvaluateMembership("coupang_wow", map[string]float64{"order_count": 1}, price)
	require.True(t, ok)
	// 3,000 / 4,990 = 60.1%, below break-even
	assert.Equal(t, VerdictLoss, got.Verdict)
}

func TestVerdictBands(t *testing.T) {
	price := decimal.NewFromInt(3000)

	cases := []struct {
		orders float64
		want   MembershipVerdict
	}{
		{2, VerdictExcellent}, // 6,000 -> 200%
		{1, VerdictGood},      // 3,000 -> 100%
		{0.9, VerdictBreakEven},
		{0.5, VerdictLoss},
	}
	for _, tc := range cases {
		got, ok := EvaluateMembership("baemin_club", map[string]float64{"order_count": tc.orders}, price)
		require.True(t, ok)
		assert.Equal(t, tc.want, got.Verdict, "orders=%v roi=%s", tc.orders, got.ROIPercent)
	}
}

func TestEvaluateMembershipUnknownModel(t *testing.T) {
	_, ok := EvaluateMembership("no_such_membership", nil, decimal.NewFromInt(1000))
	assert.False(t, ok)
}

func TestMembershipZeroPrice(t *testing.T) {
	got, ok := EvaluateMembership("kurly_pass", map[string]float64{"order_count": 3}, decimal.Zero)
	require.True(t, ok)
	assert.True(t, got.ROIPercent.IsZero())
	assert.Equal(t, VerdictLoss, got.Verdict)
}
