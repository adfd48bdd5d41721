package engine

import (
	"testing"

	"tradie_quote/internal/domain/entities"
)

func tradeFor(t *testing.T, category string) entities.TradeCategory {
	t.Helper()
	for _, trade := range DefaultCatalog() {
		if trade.Category == category {
			return trade
		}
	}
	t.Fatalf("no catalog entry for category %q", category)
	return entities.TradeCategory{}
}

func TestEstimateHours(t *testing.T) {
	cases := []struct {
		name        string
		description string
		category    string
		want        float64
	}{
		{name: "power points scale with quantity", description: "install 8 power points", category: "electrical", want: 4},
		{name: "power points floor", description: "install 1 power point", category: "electrical", want: 1.5},
		{name: "downlights scale", description: "install 10 downlights", category: "electrical", want: 3},
		{name: "downlights floor", description: "install 2 downlights", category: "electrical", want: 2},
		{name: "switchboard", description: "switchboard upgrade", category: "electrical", want: 4},
		{name: "rewire", description: "rewire the house", category: "electrical", want: 8},
		{name: "electrical baseline", description: "electrical work", category: "electrical", want: 2},
		{name: "single tap", description: "replace a tap", category: "plumbing", want: 1},
		{name: "multiple taps", description: "replace 4 taps", category: "plumbing", want: 2},
		{name: "toilet", description: "install new toilet", category: "plumbing", want: 2},
		{name: "hot water", description: "hot water system replacement", category: "plumbing", want: 4},
		{name: "dual battery", description: "dual battery install", category: "automotive", want: 6},
		{name: "light bar", description: "fit a light bar", category: "automotive", want: 3},
		{name: "dash cam", description: "hardwire dash cam", category: "automotive", want: 2},
		{name: "uhf", description: "install uhf radio", category: "automotive", want: 2.5},
		{name: "shelves", description: "put up 5 shelves", category: "handyman", want: 2.5},
		{name: "mount tv", description: "mount the tv", category: "handyman", want: 1.5},
		{name: "bathroom reno", description: "bathroom renovation", category: "renovation", want: 16},
		{name: "kitchen reno", description: "kitchen renovation", category: "renovation", want: 20},
		{name: "other trade scales with quantity", description: "paint 10 rooms", category: "painting", want: 5},
		{name: "other trade capped", description: "paint 40 rooms", category: "painting", want: 8},
		{name: "other trade floor", description: "paint the hallway", category: "painting", want: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateHours(tc.description, tradeFor(t, tc.category))
			if got != tc.want {
				t.Fatalf("EstimateHours(%q, %s) = %v, want %v", tc.description, tc.category, got, tc.want)
			}
		})
	}
}

func TestEstimateHoursRoundsToHalf(t *testing.T) {
	// 3 downlights: 3 * 0.3 = 0.9 -> floor of 2 applies; 7 taps: 3.5 exact.
	got := EstimateHours("replace 7 taps", tradeFor(t, "plumbing"))
	if got != 3.5 {
		t.Fatalf("expected 3.5, got %v", got)
	}
	// 9 power points: 4.5 exact half step.
	got = EstimateHours("install 9 power points", tradeFor(t, "electrical"))
	if got != 4.5 {
		t.Fatalf("expected 4.5, got %v", got)
	}
}
