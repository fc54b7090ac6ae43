package compose

import (
	"fmt"

	"github.com/verolabs/docforge/internal/record"
)

// Totals holds the derived invoice amounts. Values are unrounded; rounding
// happens only when USD formats them, so accumulation never compounds
// rounding error.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ItemAmount returns the line amount: the explicit amount when provided,
// otherwise quantity times rate.
func ItemAmount(it record.LineItem) float64 {
	if it.Amount != nil {
		return *it.Amount
	}
	return it.Quantity * it.Rate
}

// ComputeTotals derives subtotal, tax and total for an invoice.
func ComputeTotals(items []record.LineItem, taxRate, discount float64) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += ItemAmount(it)
	}
	if taxRate > 0 {
		t.Tax = t.Subtotal * taxRate / 100
	}
	t.Total = t.Subtotal + t.Tax - discount
	return t
}

// USD formats a monetary value as $X.XX.
func USD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
