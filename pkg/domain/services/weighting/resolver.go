// Package weighting resolves each item's percentage contribution to overall
// project progress from cost amounts or manual weight entries.
package weighting

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/emko/mpr/pkg/domain/entities"
)

// Strategy identifies how item weights were derived for a recompute cycle.
type Strategy int

const (
	// AmountBased weights are proportional to cost amounts. This strategy
	// always wins when any cost data exists.
	AmountBased Strategy = iota
	// Manual weights are the user-entered values, used as-is. They are not
	// renormalized to 100; that is accepted policy, not a bug.
	Manual
	// EqualSplit assigns 100/n to every item when neither amounts nor manual
	// weights carry any information.
	EqualSplit
)

// String method for Strategy enum
func (s Strategy) String() string {
	switch s {
	case AmountBased:
		return "AmountBased"
	case Manual:
		return "Manual"
	case EqualSplit:
		return "EqualSplit"
	default:
		return "Unknown"
	}
}

// Weighting is the outcome of resolving weights over the full item set.
// Weights is parallel to the input items.
type Weighting struct {
	Strategy Strategy
	Weights  []decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// CleanNumber coerces a raw numeric cell to a decimal. Thousands separators,
// percent signs and surrounding whitespace are stripped; anything that still
// fails to parse coerces to zero rather than failing the caller.
func CleanNumber(raw string) decimal.Decimal {
	s := strings.ReplaceAll(raw, ",", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Resolve computes the weighting for the full item set, evaluated once per
// recompute cycle:
//
//  1. If the amounts sum to a positive total, every weight is
//     amount/total*100.
//  2. Otherwise, if no manual weight was entered either and the set is
//     non-empty, fall back to an equal split.
//  3. Otherwise the manual entries stand as entered.
func Resolve(items []entities.Item) Weighting {
	n := len(items)
	weights := make([]decimal.Decimal, n)

	totalAmount := decimal.Zero
	totalManual := decimal.Zero
	for _, item := range items {
		totalAmount = totalAmount.Add(item.Amount)
		totalManual = totalManual.Add(item.WeightPercent)
	}

	if totalAmount.IsPositive() {
		for i, item := range items {
			weights[i] = item.Amount.Div(totalAmount).Mul(hundred)
		}
		return Weighting{Strategy: AmountBased, Weights: weights}
	}

	if totalManual.IsZero() && n > 0 {
		equal := hundred.Div(decimal.NewFromInt(int64(n)))
		for i := range weights {
			weights[i] = equal
		}
		return Weighting{Strategy: EqualSplit, Weights: weights}
	}

	for i, item := range items {
		weights[i] = item.WeightPercent
	}
	return Weighting{Strategy: Manual, Weights: weights}
}

// Apply writes the resolved weights onto a copy of the item table.
func Apply(items []entities.Item, w Weighting) []entities.Item {
	out := entities.CloneItems(items)
	for i := range out {
		if i < len(w.Weights) {
			out[i].WeightPercent = w.Weights[i]
		}
	}
	return out
}
