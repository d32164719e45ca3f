package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

// PaymentHandler records ledger entries against sessions. The ledger is
// additive: recording a payment never changes the session's totals or
// status, and partial or excess payments are accepted as-is. Entries start
// as PENDING unless the caller states otherwise.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
	Sessions *repository.SessionRepo
}

func NewPaymentHandler(p *repository.PaymentRepo, s *repository.SessionRepo) *PaymentHandler {
	if p == nil || s == nil {
		panic("nil repository passed to NewPaymentHandler")
	}
	return &PaymentHandler{Payments: p, Sessions: s}
}

type paymentReq struct {
	SessionID            uint64          `json:"session_id"`
	AmountPaid           decimal.Decimal `json:"amount_paid"`
	PaymentMethod        string          `json:"payment_method"`
	PaymentStatus        string          `json:"payment_status"`
	TransactionReference string          `json:"transaction_reference"`
}

type paymentResp struct {
	ID                   uint64    `json:"id"`
	SessionID            uint64    `json:"session_id"`
	AmountPaid           string    `json:"amount_paid"`
	PaymentMethod        string    `json:"payment_method"`
	PaymentStatus        string    `json:"payment_status"`
	TransactionReference *string   `json:"transaction_reference,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func toPaymentResp(p model.Payment) paymentResp {
	return paymentResp{
		ID:                   p.ID,
		SessionID:            p.SessionID,
		AmountPaid:           p.AmountPaid.StringFixed(2),
		PaymentMethod:        p.PaymentMethod,
		PaymentStatus:        p.PaymentStatus,
		TransactionReference: p.TransactionReference,
		CreatedAt:            p.CreatedAt,
	}
}

// Create handles POST /v1/payments.
func (h *PaymentHandler) Create(c echo.Context) error {
	operatorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.SessionID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session_id is required"})
	}
	if req.AmountPaid.LessThanOrEqual(decimal.Zero) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount_paid must be positive"})
	}
	req.PaymentMethod = strings.ToUpper(strings.TrimSpace(req.PaymentMethod))
	if !model.ValidPaymentMethod(req.PaymentMethod) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_method must be CASH, UPI or CARD"})
	}
	req.PaymentStatus = strings.ToUpper(strings.TrimSpace(req.PaymentStatus))
	if req.PaymentStatus == "" {
		req.PaymentStatus = model.PaymentPending
	}
	if !model.ValidPaymentStatus(req.PaymentStatus) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_status must be PENDING, COMPLETED or FAILED"})
	}
	ctx := c.Request().Context()

	if _, err := h.Sessions.GetByID(ctx, req.SessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	p := model.Payment{
		SessionID:            req.SessionID,
		AmountPaid:           req.AmountPaid,
		PaymentMethod:        req.PaymentMethod,
		PaymentStatus:        req.PaymentStatus,
		TransactionReference: optional(req.TransactionReference),
		CreatedBy:            &operatorID,
		UpdatedBy:            &operatorID,
	}
	if err := h.Payments.Create(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record payment"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": toPaymentResp(p)})
}

// Get handles GET /v1/payments/:id.
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
	}
	p, err := h.Payments.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toPaymentResp(p)})
}

// ListBySession handles GET /v1/sessions/:id/payments.
func (h *PaymentHandler) ListBySession(c echo.Context) error {
	sessionID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Sessions.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items, err := h.Payments.ListBySession(ctx, sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payments"})
	}
	out := make([]paymentResp, 0, len(items))
	for _, p := range items {
		out = append(out, toPaymentResp(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
