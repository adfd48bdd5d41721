package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"tradie_quote/internal/domain/entities"
	"tradie_quote/internal/engine"
	mock_interfaces "tradie_quote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestEstimator(t *testing.T) *engine.Estimator {
	t.Helper()
	est, err := engine.NewEstimator(engine.DefaultCatalog(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected estimator error: %v", err)
	}
	return est
}

func TestQuoteUseCase_PreviewQuote(t *testing.T) {
	t.Run("invalid description", func(t *testing.T) {
		uc := NewQuoteUseCase(newTestEstimator(t), nil, nil, nil)
		_, err := uc.PreviewQuote("   ", 0, true)
		if !errors.Is(err, ErrInvalidDescription) {
			t.Fatalf("expected ErrInvalidDescription, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc := NewQuoteUseCase(newTestEstimator(t), nil, nil, nil)
		res, err := uc.PreviewQuote("install 4 double power points", 0, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.JobTitle != "4 Power Point Installation" {
			t.Fatalf("unexpected job title: %q", res.JobTitle)
		}
		if len(res.Items) == 0 {
			t.Fatalf("expected line items")
		}
		if res.Total <= res.Subtotal {
			t.Fatalf("expected GST on top of subtotal: %+v", res)
		}
	})
}

func TestQuoteUseCase_GenerateQuote(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewQuoteUseCase(newTestEstimator(t), nil, nil, nil)
		_, _, err := uc.GenerateQuote(context.Background(), GenerateQuoteInput{UserID: " ", Description: "fix a leaky tap"})
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid description", func(t *testing.T) {
		uc := NewQuoteUseCase(newTestEstimator(t), nil, nil, nil)
		_, _, err := uc.GenerateQuote(context.Background(), GenerateQuoteInput{UserID: "user-1", Description: "  "})
		if !errors.Is(err, ErrInvalidDescription) {
			t.Fatalf("expected ErrInvalidDescription, got %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).Return(entities.Quote{}, errors.New("db"))

		_, _, err := uc.GenerateQuote(context.Background(), GenerateQuoteInput{UserID: "user-1", Description: "fix a leaky tap"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("client lookup failure is non fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, clientRepo, nil)

		clientRepo.EXPECT().FindByEmail(gomock.Any(), "user-1", "jo@example.com").Return(entities.Client{}, errors.New("db"))
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ClientID != "" {
					t.Fatalf("expected empty client id, got %q", q.ClientID)
				}
				return q, nil
			},
		)
		repo.EXPECT().CreateItems(gomock.Any(), gomock.Any()).Return(nil)

		_, _, err := uc.GenerateQuote(context.Background(), GenerateQuoteInput{
			UserID:      "user-1",
			Description: "fix a leaky tap",
			ClientEmail: "jo@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, clientRepo, nil)

		clientRepo.EXPECT().FindByEmail(gomock.Any(), "user-1", "jo@example.com").Return(entities.Client{ID: "client-9"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.UserID != "user-1" || q.ClientID != "client-9" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Status != entities.QuoteStatusDraft {
					t.Fatalf("expected draft status, got %s", q.Status)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)
		repo.EXPECT().CreateItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []entities.QuoteItem) error {
				if len(items) == 0 {
					t.Fatalf("expected persisted items")
				}
				for _, it := range items {
					if it.ID == "" || it.QuoteID == "" {
						t.Fatalf("unexpected item: %+v", it)
					}
					if it.Total != it.Qty*it.Cost {
						t.Fatalf("item total mismatch: %+v", it)
					}
				}
				return nil
			},
		)

		q, items, err := uc.GenerateQuote(context.Background(), GenerateQuoteInput{
			UserID:      " user-1 ",
			Description: "install 4 double power points",
			ClientEmail: "jo@example.com",
			GSTEnabled:  true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID == "" {
			t.Fatalf("expected generated id")
		}
		if len(items) == 0 {
			t.Fatalf("expected items")
		}
		if !strings.Contains(q.JobTitle, "Power Point") {
			t.Fatalf("unexpected job title: %q", q.JobTitle)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(newTestEstimator(t), nil, nil, nil)
		_, _, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Quote{}, errors.New("db"))

		_, _, err := uc.GetByID(context.Background(), "id-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Quote{}, nil)

		_, _, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Quote{ID: "id-1"}, nil)
		repo.EXPECT().ListItemsByQuoteID(gomock.Any(), "id-1").Return([]entities.QuoteItem{{ID: "item-1", QuoteID: "id-1"}}, nil)

		q, items, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "id-1" || len(items) != 1 {
			t.Fatalf("unexpected result: %+v %+v", q, items)
		}
	})
}

func TestQuoteUseCase_ListByUserID(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewQuoteUseCase(newTestEstimator(t), nil, nil, nil)
		_, err := uc.ListByUserID(context.Background(), "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, nil)
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Quote{{ID: "id-1"}}, nil)

		quotes, err := uc.ListByUserID(context.Background(), " user-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 1 {
			t.Fatalf("unexpected result: %+v", quotes)
		}
	})
}

func TestQuoteUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, id string) (entities.Quote, error)
		status entities.QuoteStatus
	}{
		{name: "send", call: (*QuoteUseCase).SendByID, status: entities.QuoteStatusSent},
		{name: "approve", call: (*QuoteUseCase).ApproveByID, status: entities.QuoteStatusApproved},
		{name: "reject", call: (*QuoteUseCase).RejectByID, status: entities.QuoteStatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewQuoteUseCase(newTestEstimator(t), nil, nil, nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidQuoteID) {
				t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
			}
		})

		t.Run(tc.name+" repo error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, nil)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "id-1", tc.status).Return(entities.Quote{}, errors.New("db"))

			_, err := tc.call(uc, context.Background(), "id-1")
			if err == nil || err.Error() != "db" {
				t.Fatalf("expected db error, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, nil)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "id-1", tc.status).Return(entities.Quote{}, nil)

			_, err := tc.call(uc, context.Background(), "id-1")
			if !errors.Is(err, ErrQuoteNotFound) {
				t.Fatalf("expected ErrQuoteNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, nil)
			expected := entities.Quote{ID: "id-1", Status: tc.status}
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "id-1", tc.status).Return(expected, nil)

			res, err := tc.call(uc, context.Background(), " id-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s got %s", tc.status, res.Status)
			}
		})
	}
}

func TestQuoteUseCase_ConvertToInvoice(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(newTestEstimator(t), nil, nil, nil)
		_, err := uc.ConvertToInvoice(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Quote{}, nil)

		_, err := uc.ConvertToInvoice(context.Background(), "id-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Quote{ID: "id-1", Status: entities.QuoteStatusDraft}, nil)

		_, err := uc.ConvertToInvoice(context.Background(), "id-1")
		if !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})

	t.Run("already invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, invoiceRepo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Quote{ID: "id-1", Status: entities.QuoteStatusApproved}, nil)
		invoiceRepo.EXPECT().GetByQuoteID(gomock.Any(), "id-1").Return(entities.Invoice{ID: "inv-1"}, nil)

		_, err := uc.ConvertToInvoice(context.Background(), "id-1")
		if !errors.Is(err, ErrInvoiceAlreadyExists) {
			t.Fatalf("expected ErrInvoiceAlreadyExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, invoiceRepo)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Quote{ID: "id-1", Status: entities.QuoteStatusApproved, Total: 528}, nil)
		invoiceRepo.EXPECT().GetByQuoteID(gomock.Any(), "id-1").Return(entities.Invoice{}, nil)
		invoiceRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.ID == "" || inv.QuoteID != "id-1" || inv.Total != 528 {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				if !strings.HasPrefix(inv.InvoiceNumber, "INV-") {
					t.Fatalf("unexpected invoice number: %q", inv.InvoiceNumber)
				}
				if inv.Status != entities.InvoiceStatusUnpaid {
					t.Fatalf("expected unpaid status, got %s", inv.Status)
				}
				if !inv.DueDate.After(inv.CreatedAt) {
					t.Fatalf("expected due date after creation: %+v", inv)
				}
				return inv, nil
			},
		)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "id-1", entities.QuoteStatusInvoiced).Return(entities.Quote{ID: "id-1", Status: entities.QuoteStatusInvoiced}, nil)

		inv, err := uc.ConvertToInvoice(context.Background(), " id-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID == "" {
			t.Fatalf("expected generated invoice id")
		}
	})

	t.Run("status update failure after create is non fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewQuoteUseCase(newTestEstimator(t), repo, nil, invoiceRepo)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Quote{ID: "id-1", Status: entities.QuoteStatusApproved, Total: 100}, nil)
		invoiceRepo.EXPECT().GetByQuoteID(gomock.Any(), "id-1").Return(entities.Invoice{}, nil)
		invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil },
		)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "id-1", entities.QuoteStatusInvoiced).Return(entities.Quote{}, errors.New("db"))

		inv, err := uc.ConvertToInvoice(context.Background(), "id-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.QuoteID != "id-1" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})
}
