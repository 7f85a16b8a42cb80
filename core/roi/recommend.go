// Package roi - recommendation resolution
package roi

import (
	"fmt"

	"github.com/shopspring/decimal"

	"subwise/core/types"
)

// Savings estimation factors per action. These are heuristics; the
// dedup stage may still reduce the resulting amounts.
var (
	downgradeFactor = decimal.NewFromFloat(0.3)
	shareFactor     = decimal.NewFromFloat(0.5)
)

// Recommend maps a grade to an action and a plain-language reason.
// sharingAvailable means a family plan exists for the service and the
// subscription is not already shared.
func Recommend(grade types.Grade, sub types.Subscription, metric types.MetricType, sharingAvailable bool) (types.Action, string) {
	name := sub.Name

	switch grade {
	case types.GradeA:
		return types.ActionKeep,
			fmt.Sprintf("You are getting full value out of %s. Keep it.", name)

	case types.GradeB:
		if sharingAvailable {
			return types.ActionShare,
				fmt.Sprintf("Sharing %s with family would make it even cheaper.", name)
		}
		if metric == types.MetricCount {
			return types.ActionKeep,
				fmt.Sprintf("You use %s moderately. Using it more often would improve the value.", name)
		}
		return types.ActionKeep,
			fmt.Sprintf("%s sees decent use. A bit more and it pays for itself.", name)

	case types.GradeC:
		if sharingAvailable {
			return types.ActionShare,
				fmt.Sprintf("Usage of %s is low. Sharing the plan would cut the cost.", name)
		}
		if metric == types.MetricCount {
			return types.ActionReview,
				fmt.Sprintf("%s costs a lot per use. Paying per order without the membership may be cheaper.", name)
		}
		return types.ActionDowngrade,
			fmt.Sprintf("%s costs a lot for how much you use it. Consider a cheaper plan.", name)

	case types.GradeD:
		if metric == types.MetricCount {
			return types.ActionCancel,
				fmt.Sprintf("You barely use %s. Converting to per-use payment would save %s a month.",
					name, types.FormatMoney(sub.MonthlyPrice))
		}
		return types.ActionCancel,
			fmt.Sprintf("You barely use %s. Cancelling is recommended.", name)

	case types.GradeF:
		return types.ActionCancel,
			fmt.Sprintf("You are not using %s at all. Cancelling saves %s a month.",
				name, types.FormatMoney(sub.MonthlyPrice))

	default:
		// unknown grade degrades to a neutral review
		return types.ActionReview,
			fmt.Sprintf("Usage of %s could not be graded. Worth a review.", name)
	}
}

// PotentialSavings estimates the monthly saving of following an
// action: cancel frees the full price, downgrade 30%, share 50%.
func PotentialSavings(action types.Action, monthlyPrice decimal.Decimal) decimal.Decimal {
	switch action {
	case types.ActionCancel:
		return monthlyPrice
	case types.ActionDowngrade:
		return monthlyPrice.Mul(downgradeFactor).Round(2)
	case types.ActionShare:
		return monthlyPrice.Mul(shareFactor).Round(2)
	default:
		return decimal.Zero
	}
}
