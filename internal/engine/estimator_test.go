package engine

import (
	"math"
	"sync"
	"testing"

	"tradie_quote/internal/domain/entities"
)

func TestEstimateQuote_PowerPoints(t *testing.T) {
	e := newEstimator(t)
	result := e.EstimateQuote("install 4 double power points", 90, true)

	if result.JobTitle != "4 Power Point Installation" {
		t.Fatalf("unexpected title: %q", result.JobTitle)
	}
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items, got %+v", result.Items)
	}

	// 2h labour at 90 + 4 outlets at 55 + compliance 85.
	if result.Subtotal != 485 {
		t.Fatalf("expected subtotal 485, got %v", result.Subtotal)
	}
	if result.GSTAmount != 48.5 {
		t.Fatalf("expected gst 48.5, got %v", result.GSTAmount)
	}
	if result.Total != 533.5 {
		t.Fatalf("expected total 533.5, got %v", result.Total)
	}
}

func TestEstimateQuote_LeakyTap(t *testing.T) {
	e := newEstimator(t)
	result := e.EstimateQuote("fix a leaky tap", 0, true)

	if result.JobTitle != "Plumbing Service" {
		t.Fatalf("unexpected title: %q", result.JobTitle)
	}

	// 1h labour at the catalog rate 110 + tap kit 180 + call-out 65 + compliance 85.
	if result.Subtotal != 440 {
		t.Fatalf("expected subtotal 440, got %v", result.Subtotal)
	}
	if result.Total != 484 {
		t.Fatalf("expected total 484, got %v", result.Total)
	}
}

func TestEstimateQuote_Uncategorized(t *testing.T) {
	e := newEstimator(t)
	result := e.EstimateQuote("please help me with my project", 0, true)

	if result.JobTitle != "Professional Trade Service" {
		t.Fatalf("unexpected title: %q", result.JobTitle)
	}
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items, got %+v", result.Items)
	}

	// 2h at 95 + materials 60 + call-out 65.
	if result.Subtotal != 315 {
		t.Fatalf("expected subtotal 315, got %v", result.Subtotal)
	}
	if result.Total != 346.5 {
		t.Fatalf("expected total 346.5, got %v", result.Total)
	}
}

func TestEstimateQuote_GSTDisabled(t *testing.T) {
	e := newEstimator(t)
	result := e.EstimateQuote("fix a leaky tap", 0, false)

	if result.GSTAmount != 0 {
		t.Fatalf("expected zero gst, got %v", result.GSTAmount)
	}
	if result.Total != result.Subtotal {
		t.Fatalf("expected total == subtotal, got %v != %v", result.Total, result.Subtotal)
	}
}

func TestEstimateQuote_DeterministicApartFromSummary(t *testing.T) {
	e := newEstimator(t)

	a := e.EstimateQuote("install 4 double power points", 90, true)
	b := e.EstimateQuote("install 4 double power points", 90, true)

	if a.JobTitle != b.JobTitle || a.Subtotal != b.Subtotal || a.Total != b.Total {
		t.Fatalf("expected deterministic output, got %+v vs %+v", a, b)
	}
	if len(a.Items) != len(b.Items) {
		t.Fatalf("expected identical items, got %+v vs %+v", a.Items, b.Items)
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			t.Fatalf("item %d differs: %+v vs %+v", i, a.Items[i], b.Items[i])
		}
	}
}

func TestEstimateQuote_ItemOrdering(t *testing.T) {
	e := newEstimator(t)
	result := e.EstimateQuote("fix a leaky tap", 0, true)

	if result.Items[0].Type != entities.ItemTypeLabour {
		t.Fatalf("expected labour first, got %+v", result.Items[0])
	}
	if result.Items[1].Type != entities.ItemTypeMaterials {
		t.Fatalf("expected materials second, got %+v", result.Items[1])
	}
	for _, it := range result.Items[2:] {
		if it.Type != entities.ItemTypeOther {
			t.Fatalf("expected fees last, got %+v", result.Items)
		}
	}
}

func TestEstimateQuote_Concurrent(t *testing.T) {
	e := newEstimator(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := e.EstimateQuote("install 4 double power points", 90, true)
			if result.Subtotal != 485 {
				t.Errorf("expected subtotal 485, got %v", result.Subtotal)
			}
		}()
	}
	wg.Wait()
}

func TestEstimateQuote_TotalIsSubtotalPlusGST(t *testing.T) {
	e := newEstimator(t)
	descriptions := []string{
		"install 4 double power points",
		"fix a leaky tap",
		"bathroom renovation",
		"dual battery setup",
		"please help me with my project",
	}
	for _, d := range descriptions {
		result := e.EstimateQuote(d, 0, true)
		if math.Abs(result.Total-(result.Subtotal+result.GSTAmount)) > 1e-9 {
			t.Fatalf("total mismatch for %q: %+v", d, result)
		}
	}
}
