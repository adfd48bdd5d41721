package interfaces

import (
	"context"

	"tradie_quote/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for clients. The quote
// flow only needs to resolve an email to an existing client so a generated
// quote can be linked to it; a miss is the zero value, not an error.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	FindByEmail(ctx context.Context, userID, email string) (entities.Client, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Client, error)
}
