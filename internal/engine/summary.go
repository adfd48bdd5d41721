package engine

import (
	"fmt"
	"strings"

	"tradie_quote/internal/domain/entities"
)

// JobTitle derives a short display title from the description and its
// classified trade. Within each category a few keyword checks pick a specific
// title; anything else falls back to a title built mechanically from the
// subcategory. Deterministic.
func JobTitle(description string, trade *entities.TradeCategory) string {
	if trade == nil {
		return "Professional Trade Service"
	}
	lowerDesc := strings.ToLower(description)

	switch trade.Category {
	case "electrical":
		switch {
		case strings.Contains(lowerDesc, "power point"):
			if qty, ok := ExtractQuantity(description, []string{"double power point", "power point", "powerpoint"}); ok {
				return fmt.Sprintf("%d Power Point Installation", qty)
			}
			return "Power Point Installation"
		case strings.Contains(lowerDesc, "light"):
			return "LED Lighting Installation"
		case strings.Contains(lowerDesc, "switchboard"):
			return "Switchboard Upgrade"
		}
		return "Electrical Installation"
	case "plumbing":
		switch {
		case strings.Contains(lowerDesc, "hot water"):
			return "Hot Water System Installation"
		case strings.Contains(lowerDesc, "toilet"):
			return "Toilet Installation"
		}
		return "Plumbing Service"
	case "automotive":
		switch {
		case strings.Contains(lowerDesc, "dual battery"):
			return "Dual Battery System Installation"
		case strings.Contains(lowerDesc, "dash cam"):
			return "Dash Camera Installation"
		case strings.Contains(lowerDesc, "light bar"):
			return "LED Light Bar Installation"
		}
		return subcategoryTitle(trade.Subcategory) + " Service"
	case "carpentry":
		if strings.Contains(lowerDesc, "deck") {
			return "Timber Decking Installation"
		}
		return "Carpentry Service"
	case "concrete":
		return "Concrete Work"
	case "painting":
		return "Professional Painting Service"
	case "landscaping":
		return "Landscaping Service"
	case "tiling":
		return "Tiling Installation"
	case "roofing":
		return "Roofing Service"
	}
	return subcategoryTitle(trade.Subcategory) + " Service"
}

// Template sets per category group. The default group fills in the business
// type from the subcategory.
var summaryTemplates = map[string][]string{
	"electrical": {
		"Professional electrical installation completed to Australian standards with quality materials and expert workmanship.",
		"Expert electrical work with comprehensive testing and compliance certification for safety and reliability.",
		"Quality electrical service using premium components and professional techniques, fully compliant with regulations.",
	},
	"plumbing": {
		"Professional plumbing service completed to Australian standards with quality materials and warranty coverage.",
		"Expert plumbing installation with proper testing and compliance for long-lasting, reliable operation.",
		"Quality plumbing work using premium materials and professional techniques, fully guaranteed.",
	},
	"automotive": {
		"Professional automotive installation using quality brands with expert workmanship and attention to detail.",
		"Custom automotive modification service with premium components and professional installation.",
		"Mobile automotive service with quality parts and expert installation, completed to industry standards.",
	},
	"carpentry": {
		"Professional carpentry work using quality materials and traditional techniques, built to last.",
		"Expert timber work with attention to detail and quality craftsmanship, completed to building standards.",
		"Quality carpentry service using premium materials and professional techniques with warranty.",
	},
	"handyman": {
		"Professional handyman service with quality workmanship and attention to detail.",
		"Expert installation and repair work completed to high standards with quality materials.",
		"Reliable handyman service with professional results and customer satisfaction guaranteed.",
	},
}

var defaultSummaryTemplates = []string{
	"Professional %s service completed to industry standards with quality workmanship.",
	"Expert %s work with attention to detail and quality results, fully guaranteed.",
	"Quality %s service using premium materials and professional techniques.",
}

// Summary picks a marketing-style sentence uniformly at random from the
// category's template set. NOT deterministic: the random source makes repeat
// calls differ, so tests must assert membership in the template set rather
// than exact equality. Seed the estimator's source to force a fixed pick.
func (e *Estimator) Summary(description string, trade *entities.TradeCategory) string {
	if trade != nil {
		if templates, ok := summaryTemplates[trade.Category]; ok {
			return templates[e.intn(len(templates))]
		}
	}

	businessType := "trade"
	if trade != nil {
		businessType = strings.ToLower(subcategoryTitle(trade.Subcategory))
	}
	tpl := defaultSummaryTemplates[e.intn(len(defaultSummaryTemplates))]
	return fmt.Sprintf(tpl, businessType)
}

// SummaryTemplates returns the full template set a summary for the trade may
// be drawn from. Exported so callers and tests can verify membership.
func SummaryTemplates(trade *entities.TradeCategory) []string {
	if trade != nil {
		if templates, ok := summaryTemplates[trade.Category]; ok {
			return templates
		}
	}

	businessType := "trade"
	if trade != nil {
		businessType = strings.ToLower(subcategoryTitle(trade.Subcategory))
	}
	out := make([]string, 0, len(defaultSummaryTemplates))
	for _, tpl := range defaultSummaryTemplates {
		out = append(out, fmt.Sprintf(tpl, businessType))
	}
	return out
}
