package response

import (
	"time"

	"tradie_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// QuoteItemResponse is one priced row as returned to clients. Money fields
// are rounded to cents for presentation; the stored values keep the engine's
// full precision.
type QuoteItemResponse struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Unit  string  `json:"unit"`
	Qty   float64 `json:"qty"`
	Cost  float64 `json:"cost"`
	Total float64 `json:"total"`
}

// QuotePreviewResponse is the body for the stateless preview endpoint.
type QuotePreviewResponse struct {
	JobTitle string              `json:"job_title"`
	Summary  string              `json:"summary"`
	Items    []QuoteItemResponse `json:"items"`
	Subtotal float64             `json:"subtotal"`
	GST      float64             `json:"gst"`
	Total    float64             `json:"total"`
}

// QuoteResponse is the persisted-quote body.
type QuoteResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	ClientID    string              `json:"client_id,omitempty"`
	JobTitle    string              `json:"job_title"`
	Description string              `json:"description"`
	Summary     string              `json:"summary"`
	Status      string              `json:"status"`
	Items       []QuoteItemResponse `json:"items,omitempty"`
	Subtotal    float64             `json:"subtotal"`
	GST         float64             `json:"gst"`
	Total       float64             `json:"total"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type InvoiceResponse struct {
	ID            string    `json:"id"`
	QuoteID       string    `json:"quote_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Total         float64   `json:"total"`
	DueDate       time.Time `json:"due_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromQuoteResult(r entities.QuoteResult) QuotePreviewResponse {
	items := make([]QuoteItemResponse, 0, len(r.Items))
	for _, li := range r.Items {
		items = append(items, QuoteItemResponse{
			Name:  li.Name,
			Type:  string(li.Type),
			Unit:  string(li.Unit),
			Qty:   li.Qty,
			Cost:  roundCents(li.Cost),
			Total: roundCents(li.Qty * li.Cost),
		})
	}
	return QuotePreviewResponse{
		JobTitle: r.JobTitle,
		Summary:  r.Summary,
		Items:    items,
		Subtotal: roundCents(r.Subtotal),
		GST:      roundCents(r.GSTAmount),
		Total:    roundCents(r.Total),
	}
}

func FromQuote(q entities.Quote, items []entities.QuoteItem) QuoteResponse {
	res := QuoteResponse{
		ID:          q.ID,
		UserID:      q.UserID,
		ClientID:    q.ClientID,
		JobTitle:    q.JobTitle,
		Description: q.Description,
		Summary:     q.Summary,
		Status:      string(q.Status),
		Subtotal:    roundCents(q.Subtotal),
		GST:         roundCents(q.GSTAmount),
		Total:       roundCents(q.Total),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
	for _, it := range items {
		res.Items = append(res.Items, QuoteItemResponse{
			Name:  it.Name,
			Type:  string(it.Type),
			Unit:  string(it.Unit),
			Qty:   it.Qty,
			Cost:  roundCents(it.Cost),
			Total: roundCents(it.Total),
		})
	}
	return res
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q, nil))
	}
	return out
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		QuoteID:       inv.QuoteID,
		InvoiceNumber: inv.InvoiceNumber,
		Total:         roundCents(inv.Total),
		DueDate:       inv.DueDate,
		Status:        string(inv.Status),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
