package interfaces

import (
	"context"

	"tradie_quote/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for invoices created by
// converting approved quotes.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Invoice, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}
