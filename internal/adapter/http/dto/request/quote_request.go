package request

import (
	"errors"
	"strings"
)

var (
	ErrInvalidHourlyRate = errors.New("hourly rate out of range")
)

// Hourly rates accepted at the API boundary. Anything outside this band is
// assumed to be a typo rather than a real charge-out rate.
const (
	MinHourlyRate = 30
	MaxHourlyRate = 300
)

// QuoteRequest is the payload for quote preview and creation.
//
// HourlyRate and GSTEnabled are pointers so "absent" can be told apart from
// zero/false: a missing rate means "use the trade's default", a missing GST
// flag means GST applies.
type QuoteRequest struct {
	UserID         string   `json:"user_id"`
	JobDescription string   `json:"job_description" binding:"required"`
	ClientEmail    string   `json:"client_email"`
	HourlyRate     *float64 `json:"hourly_rate"`
	GSTEnabled     *bool    `json:"gst_enabled"`
}

func (r QuoteRequest) ResolveDescription() string {
	return strings.TrimSpace(r.JobDescription)
}

func (r QuoteRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r QuoteRequest) ResolveClientEmail() string {
	return strings.TrimSpace(r.ClientEmail)
}

// ResolveHourlyRate validates the caller-supplied rate against the accepted
// band. A zero return with nil error means no override was supplied.
func (r QuoteRequest) ResolveHourlyRate() (float64, error) {
	if r.HourlyRate == nil {
		return 0, nil
	}
	rate := *r.HourlyRate
	if rate < MinHourlyRate || rate > MaxHourlyRate {
		return 0, ErrInvalidHourlyRate
	}
	return rate, nil
}

func (r QuoteRequest) ResolveGSTEnabled() bool {
	if r.GSTEnabled == nil {
		return true
	}
	return *r.GSTEnabled
}
