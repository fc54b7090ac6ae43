package compose

import (
	"testing"

	"github.com/verolabs/docforge/internal/record"
)

func TestComputeTotals(t *testing.T) {
	amt := 40.0
	items := []record.LineItem{
		{Description: "A", Quantity: 2, Rate: 100},
		{Description: "B", Quantity: 1, Rate: 50, Amount: &amt},
	}
	totals := ComputeTotals(items, 10, 5)
	if totals.Subtotal != 240 {
		t.Errorf("subtotal = %v, want 240", totals.Subtotal)
	}
	if totals.Tax != 24 {
		t.Errorf("tax = %v, want 24", totals.Tax)
	}
	if totals.Total != 259 {
		t.Errorf("total = %v, want 259", totals.Total)
	}
}

func TestItemAmountOverride(t *testing.T) {
	amt := 40.0
	it := record.LineItem{Quantity: 1, Rate: 50, Amount: &amt}
	if got := ItemAmount(it); got != 40 {
		t.Errorf("amount = %v, explicit amount should override quantity*rate", got)
	}
}

func TestItemAmountComputed(t *testing.T) {
	it := record.LineItem{Quantity: 3, Rate: 25.5}
	if got := ItemAmount(it); got != 76.5 {
		t.Errorf("amount = %v, want 76.5", got)
	}
}

func TestComputeTotalsNoTax(t *testing.T) {
	items := []record.LineItem{{Quantity: 1, Rate: 100}}
	totals := ComputeTotals(items, 0, 0)
	if totals.Tax != 0 {
		t.Errorf("tax = %v, want 0 when rate is 0", totals.Tax)
	}
	if totals.Total != 100 {
		t.Errorf("total = %v, want 100", totals.Total)
	}
}

func TestUSDRoundsAtFormatTime(t *testing.T) {
	if got := USD(259.0); got != "$259.00" {
		t.Errorf("USD(259) = %q", got)
	}
	if got := USD(76.555); got != "$76.56" {
		t.Errorf("USD(76.555) = %q", got)
	}
}
