package engine

import (
	"math"
	"strings"

	"tradie_quote/internal/domain/entities"
)

const (
	callOutFee    = 65
	complianceFee = 85
	// Per labour hour, for the generic "Materials and Supplies" estimate.
	genericMaterialsRate = 30
	// Effective rate for jobs no trade could be classified for.
	uncategorizedHourlyRate = 95
)

// groupGenerator appends the materials items for one category group. Each
// generator inspects the description for its own keyword subset and picks
// among fixed-cost named bundles.
type groupGenerator func(description string, hours float64) []entities.QuoteLineItem

// Category groups sharing one materials generator. Categories missing from
// the map fall through to the generic materials item.
var groupGenerators = map[string]groupGenerator{
	"electrical":  electricalItems,
	"plumbing":    plumbingItems,
	"carpentry":   carpentryItems,
	"handyman":    carpentryItems,
	"renovation":  carpentryItems,
	"painting":    paintingItems,
	"landscaping": landscapingItems,
	"fencing":     landscapingItems,
	"concrete":    concreteItems,
	"paving":      concreteItems,
	"automotive":  automotiveItems,
}

// GenerateItems produces the full ordered list of priced line items. The
// order is an observable contract: labour first, then materials, then the
// call-out and compliance fees.
//
// A nil trade takes a separate, simpler path: a fixed three-item bundle whose
// 2 hour baseline deliberately does not flow through EstimateHours.
func GenerateItems(description string, trade *entities.TradeCategory, hourlyRate float64) []entities.QuoteLineItem {
	if trade == nil {
		return uncategorizedItems(hourlyRate)
	}

	rate := hourlyRate
	if rate <= 0 {
		rate = trade.DefaultHourlyRate
	}

	hours := EstimateHours(description, *trade)
	items := []entities.QuoteLineItem{{
		Name: "Professional " + subcategoryTitle(trade.Subcategory) + " Service",
		Type: entities.ItemTypeLabour,
		Unit: entities.UnitHours,
		Qty:  hours,
		Cost: rate,
	}}

	if gen, ok := groupGenerators[trade.Category]; ok {
		items = append(items, gen(description, hours)...)
	} else {
		items = append(items, entities.QuoteLineItem{
			Name: "Materials and Supplies",
			Type: entities.ItemTypeMaterials,
			Unit: entities.UnitEach,
			Qty:  1,
			Cost: math.Round(hours * genericMaterialsRate),
		})
	}

	if hours < 2 {
		items = append(items, entities.QuoteLineItem{
			Name: "Service Call-Out Fee",
			Type: entities.ItemTypeOther,
			Unit: entities.UnitFixed,
			Qty:  1,
			Cost: callOutFee,
		})
	}

	if trade.Compliance != "" && (trade.Category == "electrical" || trade.Category == "plumbing") {
		items = append(items, entities.QuoteLineItem{
			Name: "Testing & Compliance",
			Type: entities.ItemTypeOther,
			Unit: entities.UnitFixed,
			Qty:  1,
			Cost: complianceFee,
		})
	}

	return items
}

func uncategorizedItems(hourlyRate float64) []entities.QuoteLineItem {
	rate := hourlyRate
	if rate <= 0 {
		rate = uncategorizedHourlyRate
	}
	return []entities.QuoteLineItem{
		{
			Name: "Professional Service",
			Type: entities.ItemTypeLabour,
			Unit: entities.UnitHours,
			Qty:  baselineHours,
			Cost: rate,
		},
		{
			Name: "Materials and Supplies",
			Type: entities.ItemTypeMaterials,
			Unit: entities.UnitEach,
			Qty:  1,
			Cost: baselineHours * genericMaterialsRate,
		},
		{
			Name: "Service Call-Out Fee",
			Type: entities.ItemTypeOther,
			Unit: entities.UnitFixed,
			Qty:  1,
			Cost: callOutFee,
		},
	}
}

func electricalItems(description string, hours float64) []entities.QuoteLineItem {
	lowerDesc := strings.ToLower(description)
	switch {
	case strings.Contains(lowerDesc, "power point") || strings.Contains(lowerDesc, "outlet"):
		qty, ok := ExtractQuantity(description, []string{"double power point", "power point", "powerpoint", "outlet"})
		if !ok {
			qty = 2
		}
		return countedMaterials("Power Outlet & Materials", qty, 55)
	case strings.Contains(lowerDesc, "light") || strings.Contains(lowerDesc, "downlight"):
		qty, ok := ExtractQuantity(description, []string{"light", "downlight", "led"})
		if !ok {
			qty = 6
		}
		return countedMaterials("LED Downlights & Wiring", qty, 45)
	case strings.Contains(lowerDesc, "switchboard"):
		return singleMaterials("Switchboard Components", 350)
	default:
		return singleMaterials("Electrical Components", 120)
	}
}

func plumbingItems(description string, hours float64) []entities.QuoteLineItem {
	lowerDesc := strings.ToLower(description)
	switch {
	case strings.Contains(lowerDesc, "tap") || strings.Contains(lowerDesc, "mixer"):
		return singleMaterials("Tap & Fittings", 180)
	case strings.Contains(lowerDesc, "toilet"):
		return singleMaterials("Toilet Suite & Installation Kit", 320)
	case strings.Contains(lowerDesc, "hot water"):
		return singleMaterials("Hot Water System", 850)
	default:
		return singleMaterials("Plumbing Materials", 150)
	}
}

func carpentryItems(description string, hours float64) []entities.QuoteLineItem {
	lowerDesc := strings.ToLower(description)
	switch {
	case strings.Contains(lowerDesc, "deck"):
		return singleMaterials("Decking Materials & Hardware", 450)
	case strings.Contains(lowerDesc, "shelf") || strings.Contains(lowerDesc, "shelves"):
		qty, ok := ExtractQuantity(description, []string{"shelf", "shelves"})
		if !ok {
			qty = 2
		}
		return countedMaterials("Shelf & Mounting Hardware", qty, 35)
	case strings.Contains(lowerDesc, "kitchen"):
		return singleMaterials("Kitchen Installation Materials", 800)
	case strings.Contains(lowerDesc, "bathroom"):
		return singleMaterials("Bathroom Renovation Materials", 650)
	default:
		return singleMaterials("Timber & Hardware", 180)
	}
}

func paintingItems(description string, hours float64) []entities.QuoteLineItem {
	return singleMaterials("Paint & Materials", 180)
}

func landscapingItems(description string, hours float64) []entities.QuoteLineItem {
	lowerDesc := strings.ToLower(description)
	switch {
	case strings.Contains(lowerDesc, "fence"):
		return singleMaterials("Fencing Materials", 450)
	case strings.Contains(lowerDesc, "garden") || strings.Contains(lowerDesc, "plant"):
		return singleMaterials("Plants & Garden Materials", 250)
	default:
		return singleMaterials("Landscaping Materials", 200)
	}
}

func concreteItems(description string, hours float64) []entities.QuoteLineItem {
	return singleMaterials("Concrete & Materials", 380)
}

func automotiveItems(description string, hours float64) []entities.QuoteLineItem {
	lowerDesc := strings.ToLower(description)
	switch {
	case strings.Contains(lowerDesc, "dual battery"):
		return singleMaterials("Dual Battery System Kit", 750)
	case strings.Contains(lowerDesc, "light bar"):
		return singleMaterials("LED Light Bar & Wiring Kit", 320)
	case strings.Contains(lowerDesc, "dash cam"):
		return singleMaterials("Dash Camera & Installation Kit", 280)
	case strings.Contains(lowerDesc, "uhf"):
		return singleMaterials("UHF Radio & Antenna Kit", 250)
	default:
		return singleMaterials("Automotive Parts & Materials", 200)
	}
}

func countedMaterials(name string, qty int, unitCost float64) []entities.QuoteLineItem {
	return []entities.QuoteLineItem{{
		Name: name,
		Type: entities.ItemTypeMaterials,
		Unit: entities.UnitEach,
		Qty:  float64(qty),
		Cost: unitCost,
	}}
}

func singleMaterials(name string, cost float64) []entities.QuoteLineItem {
	return countedMaterials(name, 1, cost)
}

// subcategoryTitle turns "residential_electrician" into
// "Residential Electrician".
func subcategoryTitle(subcategory string) string {
	words := strings.Split(strings.ReplaceAll(subcategory, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
