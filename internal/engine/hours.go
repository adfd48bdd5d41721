package engine

import (
	"math"
	"strings"

	"tradie_quote/internal/domain/entities"
)

const baselineHours = 2

// EstimateHours maps a description and its classified trade to estimated
// labour hours. Category-tuned formulas override the 2 hour baseline;
// unrecognized work scales with quantity inside a sane band. The final
// round-to-nearest-0.5 is mandatory and must stay the last operation so that
// per-item math runs unrounded.
func EstimateHours(description string, trade entities.TradeCategory) float64 {
	lowerDesc := strings.ToLower(description)
	quantity := float64(firstQuantity(description))
	hours := float64(baselineHours)

	switch trade.Category {
	case "electrical":
		switch {
		case strings.Contains(lowerDesc, "power point") || strings.Contains(lowerDesc, "outlet"):
			hours = math.Max(1.5, quantity*0.5)
		case strings.Contains(lowerDesc, "light") || strings.Contains(lowerDesc, "downlight"):
			hours = math.Max(2, quantity*0.3)
		case strings.Contains(lowerDesc, "switchboard"):
			hours = 4
		case strings.Contains(lowerDesc, "rewire"):
			hours = 8
		}

	case "plumbing":
		switch {
		case strings.Contains(lowerDesc, "tap") || strings.Contains(lowerDesc, "mixer"):
			hours = math.Max(1, quantity*0.5)
		case strings.Contains(lowerDesc, "toilet"):
			hours = 2
		case strings.Contains(lowerDesc, "hot water"):
			hours = 4
		}

	case "automotive":
		switch {
		case strings.Contains(lowerDesc, "dual battery"):
			hours = 6
		case strings.Contains(lowerDesc, "light bar"):
			hours = 3
		case strings.Contains(lowerDesc, "dash cam"):
			hours = 2
		case strings.Contains(lowerDesc, "uhf"):
			hours = 2.5
		}

	case "handyman":
		switch {
		case strings.Contains(lowerDesc, "shelf") || strings.Contains(lowerDesc, "shelves"):
			hours = math.Max(1, quantity*0.5)
		case strings.Contains(lowerDesc, "mount") || strings.Contains(lowerDesc, "hang"):
			hours = 1.5
		}

	case "renovation":
		switch {
		case strings.Contains(lowerDesc, "bathroom"):
			hours = 16
		case strings.Contains(lowerDesc, "kitchen"):
			hours = 20
		}

	default:
		hours = math.Max(2, math.Min(quantity*0.5, 8))
	}

	return math.Round(hours*2) / 2
}
