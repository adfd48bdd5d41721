package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - A quote is always created as a draft; the tradesperson reviews and edits
//     it before sending, so engine output never leaves the app unseen.
//   - Approved quotes may be converted into an invoice exactly once.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusInvoiced QuoteStatus = "invoiced"
)

// ItemType is the closed tag set for quote line items.
type ItemType string

const (
	ItemTypeLabour    ItemType = "labour"
	ItemTypeMaterials ItemType = "materials"
	ItemTypeOther     ItemType = "other"
)

// UnitKind makes the unit of a line item's qty explicit instead of leaving it
// implied by the item type: labour is billed in hours, counted materials per
// unit, and flat fees carry a fixed qty of 1.
type UnitKind string

const (
	UnitHours UnitKind = "hours"
	UnitEach  UnitKind = "each"
	UnitFixed UnitKind = "fixed"
)

// QuoteLineItem is one priced row of a generated quote. It is transient:
// the estimation engine produces it fresh on every call and never persists it.
type QuoteLineItem struct {
	Name string   `json:"name"`
	Type ItemType `json:"type"`
	Unit UnitKind `json:"unit"`
	Qty  float64  `json:"qty"`
	Cost float64  `json:"cost"`
}

// QuoteResult is the estimation engine's single output value. It has no
// identity and is never mutated after construction; assigning it a persistent
// identity (and any subsequent editing) is the caller's job.
//
// Items are ordered for display: labour first, then materials, then
// call-out/compliance fees last.
type QuoteResult struct {
	JobTitle  string          `json:"job_title"`
	Summary   string          `json:"summary"`
	Items     []QuoteLineItem `json:"items"`
	Subtotal  float64         `json:"subtotal"`
	GSTAmount float64         `json:"gst"`
	Total     float64         `json:"total"`
}

// Quote is the persisted quote record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Quote struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	ClientID    string      `json:"client_id,omitempty"`
	JobTitle    string      `json:"job_title"`
	Description string      `json:"description"`
	Summary     string      `json:"summary"`
	Status      QuoteStatus `json:"status"`
	Subtotal    float64     `json:"subtotal"`
	GSTAmount   float64     `json:"gst_amount"`
	Total       float64     `json:"total"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// QuoteItem is a persisted line item keyed to its quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
type QuoteItem struct {
	ID        string    `json:"id"`
	QuoteID   string    `json:"quote_id"`
	Name      string    `json:"name"`
	Type      ItemType  `json:"type"`
	Unit      UnitKind  `json:"unit"`
	Qty       float64   `json:"qty"`
	Cost      float64   `json:"cost"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
