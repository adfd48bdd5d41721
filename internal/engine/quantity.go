package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantities above this are treated as typos or nonsense ("9999 power points")
// and clamped.
const maxSaneQuantity = 20

var leadingNumberPattern = regexp.MustCompile(`^(\d+)`)

// ExtractQuantity scans the description for a number attached to one of the
// keyword variants. For each keyword, in declared order, it tries
// "<n> <keyword>", "<n> x <keyword>" and a whitespace-tolerant variant of the
// keyword; the first match wins. When no keyword-adjacent number exists it
// falls back to a bare integer at the very start of the description.
//
// The result is clamped to [1, maxSaneQuantity]. ok is false when nothing
// matched; callers then apply their per-category default quantity.
func ExtractQuantity(description string, keywords []string) (qty int, ok bool) {
	for _, keyword := range keywords {
		quoted := regexp.QuoteMeta(keyword)
		patterns := []string{
			`(?i)(\d+)\s*` + quoted,
			`(?i)(\d+)\s*x\s*` + quoted,
			`(?i)(\d+)\s*` + strings.ReplaceAll(quoted, " ", `\s*`),
		}
		for _, p := range patterns {
			m := regexp.MustCompile(p).FindStringSubmatch(description)
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return clampQuantity(n), true
		}
	}

	if m := leadingNumberPattern.FindStringSubmatch(description); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return clampQuantity(n), true
		}
	}

	return 0, false
}

// firstQuantity returns the first number appearing anywhere in the
// description, clamped, defaulting to 1. The labour estimator scales its
// per-unit formulas off this looser read of the text.
func firstQuantity(description string) int {
	m := regexp.MustCompile(`(\d+)`).FindStringSubmatch(description)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return clampQuantity(n)
}

func clampQuantity(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxSaneQuantity {
		return maxSaneQuantity
	}
	return n
}
