package interfaces

import (
	"context"

	"tradie_quote/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for quotes and their line
// items.
//
// The service must be able to:
//   - create one quote record and N line-item records keyed to it
//   - read a quote (with items) back for preview/approval screens
//   - list a tradesperson's quotes
//   - move a quote through its status lifecycle
//
// Lookups that find nothing return the zero value, not an error.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	CreateItems(ctx context.Context, items []entities.QuoteItem) error
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListItemsByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteItem, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
