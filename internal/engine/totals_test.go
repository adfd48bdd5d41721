package engine

import (
	"testing"

	"tradie_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestComputeTotals(t *testing.T) {
	items := []entities.QuoteLineItem{
		{Name: "Labour", Type: entities.ItemTypeLabour, Unit: entities.UnitHours, Qty: 2, Cost: 90},
		{Name: "Power Outlet & Materials", Type: entities.ItemTypeMaterials, Unit: entities.UnitEach, Qty: 4, Cost: 55},
		{Name: "Testing & Compliance", Type: entities.ItemTypeOther, Unit: entities.UnitFixed, Qty: 1, Cost: 85},
	}

	t.Run("gst enabled", func(t *testing.T) {
		totals := ComputeTotals(items, true)
		if !totals.Subtotal.Equal(decimal.NewFromInt(485)) {
			t.Fatalf("expected subtotal 485, got %s", totals.Subtotal)
		}
		if !totals.GSTAmount.Equal(decimal.RequireFromString("48.5")) {
			t.Fatalf("expected gst 48.5, got %s", totals.GSTAmount)
		}
		if !totals.Total.Equal(decimal.RequireFromString("533.5")) {
			t.Fatalf("expected total 533.5, got %s", totals.Total)
		}
	})

	t.Run("gst disabled", func(t *testing.T) {
		totals := ComputeTotals(items, false)
		if !totals.GSTAmount.IsZero() {
			t.Fatalf("expected zero gst, got %s", totals.GSTAmount)
		}
		if !totals.Total.Equal(totals.Subtotal) {
			t.Fatalf("expected total == subtotal, got %s != %s", totals.Total, totals.Subtotal)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		totals := ComputeTotals(nil, true)
		if !totals.Subtotal.IsZero() || !totals.GSTAmount.IsZero() || !totals.Total.IsZero() {
			t.Fatalf("expected all zero, got %+v", totals)
		}
	})

	t.Run("gst is exactly ten percent", func(t *testing.T) {
		// Amounts that drift under binary floats stay exact in decimal.
		items := []entities.QuoteLineItem{{Qty: 3, Cost: 0.1}}
		totals := ComputeTotals(items, true)
		if !totals.Subtotal.Equal(decimal.RequireFromString("0.3")) {
			t.Fatalf("expected subtotal 0.3, got %s", totals.Subtotal)
		}
		if !totals.GSTAmount.Equal(decimal.RequireFromString("0.03")) {
			t.Fatalf("expected gst 0.03, got %s", totals.GSTAmount)
		}
		if !totals.Total.Equal(decimal.RequireFromString("0.33")) {
			t.Fatalf("expected total 0.33, got %s", totals.Total)
		}
	})
}
