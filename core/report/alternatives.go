// Package report - purchase alternatives
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"subwise/core/types"
)

// PurchasePrice is one entry of the everyday-purchase price catalog
type PurchasePrice struct {
	Name  string
	Price decimal.Decimal
	Emoji string
}

// DefaultPurchaseCatalog returns the built-in everyday purchases
// used for "what you could buy instead"
func DefaultPurchaseCatalog() []PurchasePrice {
	return []PurchasePrice{
		{Name: "coffee americano", Price: decimal.NewFromInt(5000), Emoji: "☕"},
		{Name: "burger combo", Price: decimal.NewFromInt(7500), Emoji: "\U0001F354"},
		{Name: "movie ticket", Price: decimal.NewFromInt(15000), Emoji: "\U0001F3AC"},
		{Name: "bestseller book", Price: decimal.NewFromInt(18000), Emoji: "\U0001F4DA"},
		{Name: "large pizza", Price: decimal.NewFromInt(25000), Emoji: "\U0001F355"},
		{Name: "gym month", Price: decimal.NewFromInt(80000), Emoji: "\U0001F3CB️"},
		{Name: "round-trip island flight", Price: decimal.NewFromInt(100000), Emoji: "✈️"},
		{Name: "wireless earbuds", Price: decimal.NewFromInt(359000), Emoji: "\U0001F3A7"},
		{Name: "flagship phone", Price: decimal.NewFromInt(1250000), Emoji: "\U0001F4F1"},
		{Name: "laptop", Price: decimal.NewFromInt(1790000), Emoji: "\U0001F4BB"},
	}
}

// Alternatives integer-divides the yearly savings over the price
// catalog and keeps entries that are affordable at least once,
// sorted by count descending
func Alternatives(yearlySavings decimal.Decimal, prices []PurchasePrice) []types.PurchaseAlternative {
	if !yearlySavings.IsPositive() {
		return []types.PurchaseAlternative{}
	}

	out := make([]types.PurchaseAlternative, 0, len(prices))
	for _, p := range prices {
		if !p.Price.IsPositive() {
			continue
		}
		count := yearlySavings.Div(p.Price).IntPart()
		if count <= 0 {
			continue
		}
		out = append(out, types.PurchaseAlternative{
			Name:  p.Name,
			Price: p.Price,
			Emoji: p.Emoji,
			Count: int(count),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
