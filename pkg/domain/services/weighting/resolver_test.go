package weighting

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/emko/mpr/pkg/domain/entities"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestResolveAmountBased(t *testing.T) {
	items := []entities.Item{
		{Name: "A", Amount: dec("100")},
		{Name: "B", Amount: dec("300")},
		{Name: "C", Amount: dec("600")},
	}

	w := Resolve(items)
	if w.Strategy != AmountBased {
		t.Fatalf("strategy = %v, want AmountBased", w.Strategy)
	}

	want := []string{"10", "30", "60"}
	for i, expect := range want {
		if !w.Weights[i].Equal(dec(expect)) {
			t.Errorf("weight %d = %s, want %s", i, w.Weights[i], expect)
		}
	}
}

func TestResolveAmountWinsOverManual(t *testing.T) {
	// Any positive amount total beats manual entries.
	items := []entities.Item{
		{Name: "A", Amount: dec("50"), WeightPercent: dec("99")},
		{Name: "B", Amount: dec("50"), WeightPercent: dec("1")},
	}

	w := Resolve(items)
	if w.Strategy != AmountBased {
		t.Fatalf("strategy = %v, want AmountBased", w.Strategy)
	}
	if !w.Weights[0].Equal(dec("50")) {
		t.Errorf("weight 0 = %s, want 50", w.Weights[0])
	}
}

func TestResolveEqualSplit(t *testing.T) {
	items := make([]entities.Item, 4)

	w := Resolve(items)
	if w.Strategy != EqualSplit {
		t.Fatalf("strategy = %v, want EqualSplit", w.Strategy)
	}
	for i, weight := range w.Weights {
		if !weight.Equal(dec("25")) {
			t.Errorf("weight %d = %s, want 25", i, weight)
		}
	}
}

func TestResolveManualNotRenormalized(t *testing.T) {
	// Manual entries summing to 60 stay at 60; no scaling to 100.
	items := []entities.Item{
		{Name: "A", WeightPercent: dec("30")},
		{Name: "B", WeightPercent: dec("30")},
	}

	w := Resolve(items)
	if w.Strategy != Manual {
		t.Fatalf("strategy = %v, want Manual", w.Strategy)
	}
	for i := range items {
		if !w.Weights[i].Equal(dec("30")) {
			t.Errorf("weight %d = %s, want 30", i, w.Weights[i])
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	w := Resolve(nil)
	if w.Strategy != Manual {
		t.Errorf("strategy = %v, want Manual for empty set", w.Strategy)
	}
	if len(w.Weights) != 0 {
		t.Errorf("got %d weights, want 0", len(w.Weights))
	}
}

func TestApplyWritesCopy(t *testing.T) {
	items := []entities.Item{{Name: "A"}, {Name: "B"}}
	w := Weighting{Strategy: Manual, Weights: []decimal.Decimal{dec("70"), dec("30")}}

	out := Apply(items, w)
	if !out[0].WeightPercent.Equal(dec("70")) || !out[1].WeightPercent.Equal(dec("30")) {
		t.Errorf("weights not applied: %s, %s", out[0].WeightPercent, out[1].WeightPercent)
	}
	if !items[0].WeightPercent.IsZero() {
		t.Error("input slice was mutated")
	}
}

func TestCleanNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1,234", "1234"},
		{"12.5%", "12.5"},
		{" 42 ", "42"},
		{"1,234,567.89", "1234567.89"},
		{"", "0"},
		{"abc", "0"},
		{"12.5.6", "0"},
	}

	for _, tt := range tests {
		if got := CleanNumber(tt.raw); !got.Equal(dec(tt.want)) {
			t.Errorf("CleanNumber(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}
