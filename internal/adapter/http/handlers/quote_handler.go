package handlers

import (
	"context"
	"errors"
	"net/http"

	request "tradie_quote/internal/adapter/http/dto/request"
	response "tradie_quote/internal/adapter/http/dto/response"
	"tradie_quote/internal/domain/entities"
	"tradie_quote/internal/usecase"
	"tradie_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidHourlyRate   = pkg.NewDomainErrorSimple("INVALID_HOURLY_RATE", "Hourly rate must be between 30 and 300", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote estimation, the quote
// lifecycle, and invoice conversion.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// PreviewQuote runs the estimation engine without persisting anything, so the
// app can show a live quote while the tradesperson is still typing.
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	rate, err := payload.ResolveHourlyRate()
	if err != nil {
		c.JSON(errInvalidHourlyRate.HTTPStatus, errInvalidHourlyRate.ToHTTPError())
		return
	}

	result, err := h.usecase.PreviewQuote(payload.ResolveDescription(), rate, payload.ResolveGSTEnabled())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteResult(result))
}

// CreateQuote runs the engine and stores the result as a draft quote with its
// line items.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	rate, err := payload.ResolveHourlyRate()
	if err != nil {
		c.JSON(errInvalidHourlyRate.HTTPStatus, errInvalidHourlyRate.ToHTTPError())
		return
	}

	quote, items, err := h.usecase.GenerateQuote(c.Request.Context(), usecase.GenerateQuoteInput{
		UserID:      payload.ResolveUserID(),
		Description: payload.ResolveDescription(),
		ClientEmail: payload.ResolveClientEmail(),
		HourlyRate:  rate,
		GSTEnabled:  payload.ResolveGSTEnabled(),
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote, items))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, items, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, items))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByUserID(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.patchQuoteStatusByID(c, h.usecase.SendByID)
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatusByID(c, h.usecase.ApproveByID)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatusByID(c, h.usecase.RejectByID)
}

func (h *QuoteHandler) patchQuoteStatusByID(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	quote, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, nil))
}

// ConvertQuoteToInvoice turns an approved quote into an unpaid invoice.
func (h *QuoteHandler) ConvertQuoteToInvoice(c *gin.Context) {
	invoice, err := h.usecase.ConvertToInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidDescription):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote must be approved before invoicing", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for this quote", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
