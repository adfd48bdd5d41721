// Package engine implements the quote estimation engine: a pure, synchronous
// pipeline that turns a free-text job description and an hourly rate into a
// structured, priced quote. It does no I/O and holds no mutable state beyond
// the random source used for summary wording, so one Estimator may serve
// concurrent requests.
package engine

import (
	"math/rand"
	"sync"
	"time"

	"tradie_quote/internal/domain/entities"
)

// Estimator composes the classifier, labour estimator, item generator,
// totals calculator and summary/title generator over one immutable catalog.
type Estimator struct {
	catalog Catalog

	// Guards rng: summary template selection may run concurrently and
	// rand.Rand is not safe for parallel use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEstimator builds an estimator over the given catalog. A nil rng gets a
// time-seeded source; tests pass a fixed seed to pin summary selection.
func NewEstimator(catalog Catalog, rng *rand.Rand) (*Estimator, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Estimator{catalog: catalog, rng: rng}, nil
}

func (e *Estimator) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

// EstimateQuote runs the full pipeline. hourlyRate <= 0 means "use the
// catalog default"; rate range validation is the caller's responsibility.
// Everything in the result except the summary wording is deterministic for a
// given description and rate.
func (e *Estimator) EstimateQuote(description string, hourlyRate float64, gstEnabled bool) entities.QuoteResult {
	trade := e.Classify(description)
	items := GenerateItems(description, trade, hourlyRate)
	totals := ComputeTotals(items, gstEnabled)

	return entities.QuoteResult{
		JobTitle:  JobTitle(description, trade),
		Summary:   e.Summary(description, trade),
		Items:     items,
		Subtotal:  totals.Subtotal.InexactFloat64(),
		GSTAmount: totals.GSTAmount.InexactFloat64(),
		Total:     totals.Total.InexactFloat64(),
	}
}
