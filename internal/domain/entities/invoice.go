package entities

import "time"

// InvoiceStatus tracks whether a converted quote has been paid.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// Invoice is created by converting an approved quote. The quote keeps the
// priced line items; the invoice carries the agreed total and payment state.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
type Invoice struct {
	ID            string        `json:"id"`
	QuoteID       string        `json:"quote_id"`
	InvoiceNumber string        `json:"invoice_number"`
	Total         float64       `json:"total"`
	DueDate       time.Time     `json:"due_date"`
	Status        InvoiceStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
