package engine

import (
	"math/rand"
	"testing"

	"tradie_quote/internal/domain/entities"
)

func newEstimator(t *testing.T) *Estimator {
	t.Helper()
	e, err := NewEstimator(DefaultCatalog(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e
}

func TestClassify(t *testing.T) {
	e := newEstimator(t)

	cases := []struct {
		name        string
		description string
		category    string
		subcategory string
	}{
		{name: "power points", description: "install 4 double power points in the living room", category: "electrical", subcategory: "residential_electrician"},
		{name: "leaky tap", description: "fix a leaky tap in the bathroom", category: "plumbing", subcategory: "maintenance_plumber"},
		{name: "downlights", description: "install 6 led downlights", category: "electrical", subcategory: "residential_electrician"},
		{name: "hot water", description: "instantaneous hot water replacement", category: "plumbing", subcategory: "hot_water_installer"},
		{name: "light bar", description: "install a light bar on my 4wd", category: "automotive", subcategory: "fourwd_modifier"},
		{name: "deck", description: "build a timber deck out the back", category: "carpentry", subcategory: "carpenter"},
		{name: "bathroom reno", description: "full bathroom renovation", category: "renovation", subcategory: "bathroom_installer"},
		{name: "case insensitive", description: "INSTALL A NEW SWITCHBOARD", category: "electrical", subcategory: "residential_electrician"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trade := e.Classify(tc.description)
			if trade == nil {
				t.Fatalf("expected a classification for %q", tc.description)
			}
			if trade.Category != tc.category || trade.Subcategory != tc.subcategory {
				t.Fatalf("expected %s/%s, got %s/%s", tc.category, tc.subcategory, trade.Category, trade.Subcategory)
			}
		})
	}

	t.Run("no keyword match returns nil", func(t *testing.T) {
		if trade := e.Classify("please help me with my project"); trade != nil {
			t.Fatalf("expected nil trade, got %s/%s", trade.Category, trade.Subcategory)
		}
	})

	t.Run("empty description returns nil", func(t *testing.T) {
		if trade := e.Classify(""); trade != nil {
			t.Fatalf("expected nil trade, got %s/%s", trade.Category, trade.Subcategory)
		}
	})

	t.Run("whole word match outranks substring match", func(t *testing.T) {
		// "leak" only matches plumbing as a substring of "leaking", but "tap"
		// is a whole word; plumbing must beat handyman's generic "fix".
		trade := e.Classify("fix the leaking tap")
		if trade == nil || trade.Category != "plumbing" {
			t.Fatalf("expected plumbing, got %+v", trade)
		}
	})
}

func TestIsWholeWordMatch(t *testing.T) {
	cases := []struct {
		desc    string
		keyword string
		want    bool
	}{
		{"install a tap", "tap", true},
		{"tap", "tap", true},
		{"tap needs fixing", "tap", true},
		{"fix the tap", "tap", true},
		{"taping the wall", "tap", false},
		{"retap the thread", "tap", false},
	}
	for _, tc := range cases {
		if got := isWholeWordMatch(tc.desc, tc.keyword); got != tc.want {
			t.Fatalf("isWholeWordMatch(%q, %q) = %v, want %v", tc.desc, tc.keyword, got, tc.want)
		}
	}
}

func TestCatalogValidate(t *testing.T) {
	t.Run("default catalog is valid", func(t *testing.T) {
		if err := DefaultCatalog().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		if err := (Catalog{}).Validate(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing keywords", func(t *testing.T) {
		c := Catalog{{Category: "electrical", Subcategory: "x", DefaultHourlyRate: 100}}
		if err := c.Validate(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("non positive rate", func(t *testing.T) {
		c := Catalog{{Category: "electrical", Subcategory: "x", Keywords: []string{"wire"}, DefaultHourlyRate: 0}}
		if err := c.Validate(); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestNewEstimator(t *testing.T) {
	t.Run("rejects invalid catalog", func(t *testing.T) {
		if _, err := NewEstimator(Catalog{}, nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("nil rng gets a default source", func(t *testing.T) {
		e, err := NewEstimator(Catalog{{Category: "electrical", Subcategory: "x", Keywords: []string{"wire"}, DefaultHourlyRate: 100}}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var trade *entities.TradeCategory
		if trade = e.Classify("wire up the shed"); trade == nil {
			t.Fatalf("expected classification")
		}
	})
}
