package engine

import (
	"sort"
	"strings"

	"tradie_quote/internal/domain/entities"
)

type candidate struct {
	trade entities.TradeCategory
	score int
	exact bool
}

// Classify scores the description against every catalog entry and returns the
// best match, or nil when no keyword matches at all. Callers must handle the
// nil case with the generic fallback path.
//
// Scoring: score = substring matches + 2 * whole-word matches. A category with
// at least one whole-word match always outranks one with none, regardless of
// raw score. Remaining ties resolve by score, then by catalog declaration
// order (stable sort). Pure function over the static catalog: never fails,
// never mutates.
func (e *Estimator) Classify(description string) *entities.TradeCategory {
	lowerDesc := strings.ToLower(description)

	candidates := make([]candidate, 0, len(e.catalog))
	for _, trade := range e.catalog {
		matchCount := 0
		exactMatches := 0
		for _, keyword := range trade.Keywords {
			kw := strings.ToLower(keyword)
			if strings.Contains(lowerDesc, kw) {
				matchCount++
			}
			if isWholeWordMatch(lowerDesc, kw) {
				exactMatches++
			}
		}
		candidates = append(candidates, candidate{
			trade: trade,
			score: matchCount + 2*exactMatches,
			exact: exactMatches > 0,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].exact != candidates[j].exact {
			return candidates[i].exact
		}
		return candidates[i].score > candidates[j].score
	})

	if candidates[0].score == 0 {
		return nil
	}
	best := candidates[0].trade
	return &best
}

// isWholeWordMatch reports whether the keyword occurs bounded by string
// start/end or surrounding spaces, rather than merely as a substring.
func isWholeWordMatch(lowerDesc, keyword string) bool {
	return lowerDesc == keyword ||
		strings.Contains(lowerDesc, " "+keyword+" ") ||
		strings.HasPrefix(lowerDesc, keyword+" ") ||
		strings.HasSuffix(lowerDesc, " "+keyword)
}
