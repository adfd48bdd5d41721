package request

import (
	"errors"
	"testing"
)

func TestQuoteRequest_ResolveStrings(t *testing.T) {
	r := QuoteRequest{UserID: " user-1 ", JobDescription: "  fix a leaky tap  ", ClientEmail: " jo@example.com "}
	if got := r.ResolveUserID(); got != "user-1" {
		t.Fatalf("expected user-1, got %q", got)
	}
	if got := r.ResolveDescription(); got != "fix a leaky tap" {
		t.Fatalf("expected trimmed description, got %q", got)
	}
	if got := r.ResolveClientEmail(); got != "jo@example.com" {
		t.Fatalf("expected trimmed email, got %q", got)
	}
}

func TestQuoteRequest_ResolveHourlyRate(t *testing.T) {
	t.Run("absent means use default", func(t *testing.T) {
		r := QuoteRequest{}
		rate, err := r.ResolveHourlyRate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rate != 0 {
			t.Fatalf("expected 0, got %v", rate)
		}
	})

	t.Run("within range", func(t *testing.T) {
		v := 95.0
		r := QuoteRequest{HourlyRate: &v}
		rate, err := r.ResolveHourlyRate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rate != 95 {
			t.Fatalf("expected 95, got %v", rate)
		}
	})

	t.Run("boundaries accepted", func(t *testing.T) {
		for _, v := range []float64{MinHourlyRate, MaxHourlyRate} {
			v := v
			r := QuoteRequest{HourlyRate: &v}
			if _, err := r.ResolveHourlyRate(); err != nil {
				t.Fatalf("expected %v accepted, got %v", v, err)
			}
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, v := range []float64{29.99, 300.01, -5, 0} {
			v := v
			r := QuoteRequest{HourlyRate: &v}
			if _, err := r.ResolveHourlyRate(); !errors.Is(err, ErrInvalidHourlyRate) {
				t.Fatalf("expected ErrInvalidHourlyRate for %v, got %v", v, err)
			}
		}
	})
}

func TestQuoteRequest_ResolveGSTEnabled(t *testing.T) {
	r := QuoteRequest{}
	if !r.ResolveGSTEnabled() {
		t.Fatalf("expected GST enabled by default")
	}

	off := false
	r2 := QuoteRequest{GSTEnabled: &off}
	if r2.ResolveGSTEnabled() {
		t.Fatalf("expected GST disabled")
	}
}
