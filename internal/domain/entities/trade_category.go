package entities

// TradeCategory is one entry of the static trade catalog the estimation
// engine classifies against. The catalog is hand-authored, loaded once at
// process start and never mutated.
//
// Invariants (enforced when the engine is constructed):
//   - Keywords is never empty
//   - DefaultHourlyRate > 0
type TradeCategory struct {
	// Category is the coarse trade grouping, e.g. "electrical", "plumbing".
	Category string `json:"category"`
	// Subcategory is the specific specialization, e.g. "residential_electrician".
	Subcategory string `json:"subcategory"`
	// Keywords match case-insensitively as substrings of the job description.
	Keywords []string `json:"keywords"`
	// DefaultHourlyRate is used only when the caller supplies no rate.
	DefaultHourlyRate float64 `json:"default_hourly_rate"`
	// CommonItems documents expected materials. Informational only; pricing
	// logic never reads it.
	CommonItems []string `json:"common_items"`
	// Compliance is a free-text regulatory note. Non-empty for regulated
	// trades, which get a testing/compliance line item appended.
	Compliance string `json:"compliance,omitempty"`
}
