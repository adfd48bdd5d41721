package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tradie_quote/internal/domain/entities"
	"tradie_quote/internal/engine"
	"tradie_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidDescription   = errors.New("invalid job description")
	ErrQuoteNotApproved     = errors.New("quote not approved")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists for this quote")
)

// GenerateQuoteInput is the domain command for quote generation. HourlyRate
// and GSTEnabled arrive pre-validated from the HTTP boundary; a zero rate
// means "use the trade's default".
type GenerateQuoteInput struct {
	UserID      string
	Description string
	ClientEmail string
	HourlyRate  float64
	GSTEnabled  bool
}

// IQuoteUseCase exposes the quote operations.
//
//   - PreviewQuote runs the estimation engine without persisting anything
//   - GenerateQuote runs the engine and stores a draft quote with its items
//   - Send/Approve/Reject drive the status lifecycle
//   - ConvertToInvoice turns an approved quote into an unpaid invoice
type IQuoteUseCase interface {
	PreviewQuote(description string, hourlyRate float64, gstEnabled bool) (entities.QuoteResult, error)
	GenerateQuote(ctx context.Context, in GenerateQuoteInput) (entities.Quote, []entities.QuoteItem, error)
	GetByID(ctx context.Context, id string) (entities.Quote, []entities.QuoteItem, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	SendByID(ctx context.Context, id string) (entities.Quote, error)
	ApproveByID(ctx context.Context, id string) (entities.Quote, error)
	RejectByID(ctx context.Context, id string) (entities.Quote, error)
	ConvertToInvoice(ctx context.Context, quoteID string) (entities.Invoice, error)
}

type QuoteUseCase struct {
	estimator   *engine.Estimator
	repo        interfaces.IQuoteRepository
	clientRepo  interfaces.IClientRepository
	invoiceRepo interfaces.IInvoiceRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	estimator *engine.Estimator,
	repo interfaces.IQuoteRepository,
	clientRepo interfaces.IClientRepository,
	invoiceRepo interfaces.IInvoiceRepository,
) *QuoteUseCase {
	return &QuoteUseCase{estimator: estimator, repo: repo, clientRepo: clientRepo, invoiceRepo: invoiceRepo}
}

func (u *QuoteUseCase) PreviewQuote(description string, hourlyRate float64, gstEnabled bool) (entities.QuoteResult, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.QuoteResult{}, ErrInvalidDescription
	}
	return u.estimator.EstimateQuote(description, hourlyRate, gstEnabled), nil
}

func (u *QuoteUseCase) GenerateQuote(ctx context.Context, in GenerateQuoteInput) (entities.Quote, []entities.QuoteItem, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return entities.Quote{}, nil, ErrInvalidUserID
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return entities.Quote{}, nil, ErrInvalidDescription
	}

	result := u.estimator.EstimateQuote(description, in.HourlyRate, in.GSTEnabled)

	// Link the quote to an existing client when the caller named one.
	// Best effort: an unknown email or a lookup failure never blocks the
	// quote, the tradesperson can attach the client later.
	clientID := ""
	if email := strings.TrimSpace(in.ClientEmail); email != "" {
		client, err := u.clientRepo.FindByEmail(ctx, userID, email)
		if err != nil {
			log.Printf("[quote][usecase] client lookup failed user_id=%s email=%s err=%v", userID, email, err)
		} else {
			clientID = client.ID
		}
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		UserID:      userID,
		ClientID:    clientID,
		JobTitle:    result.JobTitle,
		Description: description,
		Summary:     result.Summary,
		Status:      entities.QuoteStatusDraft,
		Subtotal:    result.Subtotal,
		GSTAmount:   result.GSTAmount,
		Total:       result.Total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, nil, err
	}

	items := make([]entities.QuoteItem, 0, len(result.Items))
	for _, li := range result.Items {
		items = append(items, entities.QuoteItem{
			ID:        uuid.NewString(),
			QuoteID:   created.ID,
			Name:      li.Name,
			Type:      li.Type,
			Unit:      li.Unit,
			Qty:       li.Qty,
			Cost:      li.Cost,
			Total:     li.Qty * li.Cost,
			CreatedAt: now,
		})
	}
	if err := u.repo.CreateItems(ctx, items); err != nil {
		return entities.Quote{}, nil, err
	}

	log.Printf("[quote][usecase] generated quote_id=%s user_id=%s items=%d total=%.2f", created.ID, userID, len(items), created.Total)
	return created, items, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, []entities.QuoteItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, nil, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	if q.ID == "" {
		return entities.Quote{}, nil, ErrQuoteNotFound
	}

	items, err := u.repo.ListItemsByQuoteID(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	return q, items, nil
}

func (u *QuoteUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *QuoteUseCase) SendByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) ApproveByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) RejectByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) ConvertToInvoice(ctx context.Context, quoteID string) (entities.Invoice, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Invoice{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if q.ID == "" {
		return entities.Invoice{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusApproved {
		return entities.Invoice{}, ErrQuoteNotApproved
	}

	if existing, err := u.invoiceRepo.GetByQuoteID(ctx, quoteID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrInvoiceAlreadyExists
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		QuoteID:       q.ID,
		InvoiceNumber: fmt.Sprintf("INV-%d", now.UnixMilli()),
		Total:         q.Total,
		DueDate:       now.AddDate(0, 0, 14),
		Status:        entities.InvoiceStatusUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.invoiceRepo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}

	if _, err := u.repo.UpdateStatusByID(ctx, q.ID, entities.QuoteStatusInvoiced); err != nil {
		log.Printf("[quote][usecase] invoice created but quote status update failed quote_id=%s err=%v", q.ID, err)
	}

	log.Printf("[quote][usecase] converted quote_id=%s invoice_id=%s number=%s", q.ID, created.ID, created.InvoiceNumber)
	return created, nil
}
