package engine

import (
	"github.com/shopspring/decimal"

	"tradie_quote/internal/domain/entities"
)

// GSTRate is the flat consumption tax applied when the business is GST
// registered.
var GSTRate = decimal.RequireFromString("0.10")

// Totals carries exact decimal amounts. Rounding to cents happens only at
// presentation, never during accumulation.
type Totals struct {
	Subtotal  decimal.Decimal
	GSTAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeTotals sums qty * cost over all items into the subtotal, applies GST
// when enabled and returns subtotal + GST as the total. Order-independent and
// pure; items are assumed validated upstream.
func ComputeTotals(items []entities.QuoteLineItem, gstEnabled bool) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Qty).Mul(decimal.NewFromFloat(it.Cost))
		subtotal = subtotal.Add(line)
	}

	gst := decimal.Zero
	if gstEnabled {
		gst = subtotal.Mul(GSTRate)
	}

	return Totals{
		Subtotal:  subtotal,
		GSTAmount: gst,
		Total:     subtotal.Add(gst),
	}
}
