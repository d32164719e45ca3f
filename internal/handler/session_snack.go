package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

// SessionSnackHandler attaches snack line items to live sessions. Each
// write runs one transaction covering the line item, the stock move and
// the session total, so a partial attach can never be observed.
type SessionSnackHandler struct {
	Sessions *repository.SessionRepo
	Snacks   *repository.SnackRepo
	Lines    *repository.SessionSnackRepo
}

func NewSessionSnackHandler(s *repository.SessionRepo, sn *repository.SnackRepo, l *repository.SessionSnackRepo) *SessionSnackHandler {
	if s == nil || sn == nil || l == nil {
		panic("nil repository passed to NewSessionSnackHandler")
	}
	return &SessionSnackHandler{Sessions: s, Snacks: sn, Lines: l}
}

type attachSnackReq struct {
	SessionID uint64 `json:"gaming_session_id"`
	SnackID   uint64 `json:"snack_id"`
	Quantity  uint32 `json:"quantity"`
}

type lineResp struct {
	ID              uint64 `json:"id"`
	GamingSessionID uint64 `json:"gaming_session_id"`
	SnackID         uint64 `json:"snack_id"`
	Quantity        uint32 `json:"quantity"`
	UnitPriceAtTime string `json:"unit_price_at_time"`
	TotalCost       string `json:"total_cost"`
}

func toLineResp(l model.SessionSnack) lineResp {
	return lineResp{
		ID:              l.ID,
		GamingSessionID: l.GamingSessionID,
		SnackID:         l.SnackID,
		Quantity:        l.Quantity,
		UnitPriceAtTime: l.UnitPriceAtTime.StringFixed(2),
		TotalCost:       l.TotalCost.StringFixed(2),
	}
}

// List handles GET /v1/sessions/:id/snacks.
func (h *SessionSnackHandler) List(c echo.Context) error {
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
	items, err := h.Lines.ListBySession(ctx, sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load session snacks"})
	}
	out := make([]lineResp, 0, len(items))
	for _, l := range items {
		out = append(out, toLineResp(l))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Attach handles POST /v1/session-snacks. The snack's current price is
// snapshotted onto the line, stock is decremented and the session total
// grows by the line total, all in one transaction.
func (h *SessionSnackHandler) Attach(c echo.Context) error {
	operatorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req attachSnackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.SessionID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "gaming_session_id is required"})
	}
	if req.SnackID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "snack_id is required"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	ctx := c.Request().Context()

	tx, err := h.Sessions.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	s, err := h.Sessions.GetForUpdateTx(ctx, tx, req.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if s.SessionStatus != model.SessionActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "session is not active"})
	}

	snack, err := h.Snacks.GetForUpdateTx(ctx, tx, req.SnackID)
	if err != nil {
		if errors.Is(err, repository.ErrSnackNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "snack not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !snack.IsAvailable {
		return c.JSON(http.StatusConflict, echo.Map{"error": "snack is not available"})
	}
	if snack.StockQuantity < int32(req.Quantity) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "insufficient stock"})
	}

	line := model.SessionSnack{
		GamingSessionID: s.ID,
		SnackID:         snack.ID,
		Quantity:        req.Quantity,
		UnitPriceAtTime: snack.UnitPrice, // snapshot; later price changes never touch this line
		CreatedBy:       &operatorID,
		UpdatedBy:       &operatorID,
	}
	if err := h.Lines.CreateTx(ctx, tx, &line); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to attach snack"})
	}
	if err := h.Snacks.AdjustStockTx(ctx, tx, snack.ID, -int32(req.Quantity), operatorID); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "insufficient stock"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to adjust stock"})
	}
	if err := h.Sessions.AddToTotalTx(ctx, tx, s.ID, line.TotalCost, operatorID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update session total"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.JSON(http.StatusCreated, echo.Map{"item": toLineResp(line)})
}

// UpdateQuantity handles PUT /v1/session-snacks/:id. Quantity changes keep
// the original price snapshot; the stock and session total move by the
// delta between old and new line totals.
func (h *SessionSnackHandler) UpdateQuantity(c echo.Context) error {
	operatorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session snack id"})
	}
	var req struct {
		Quantity uint32 `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil || req.Quantity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be positive"})
	}
	ctx := c.Request().Context()

	tx, err := h.Sessions.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	line, err := h.Lines.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionSnackNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session snack not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	s, err := h.Sessions.GetForUpdateTx(ctx, tx, line.GamingSessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if s.SessionStatus != model.SessionActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "session is not active"})
	}

	stockDelta := int32(line.Quantity) - int32(req.Quantity) // positive returns stock
	if stockDelta < 0 {
		snack, err := h.Snacks.GetForUpdateTx(ctx, tx, line.SnackID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if snack.StockQuantity < -stockDelta {
			return c.JSON(http.StatusConflict, echo.Map{"error": "insufficient stock"})
		}
	}

	oldTotal := line.TotalCost
	line.Quantity = req.Quantity
	line.UpdatedBy = &operatorID
	if err := h.Lines.UpdateTx(ctx, tx, &line); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update session snack"})
	}
	if stockDelta != 0 {
		if err := h.Snacks.AdjustStockTx(ctx, tx, line.SnackID, stockDelta, operatorID); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return c.JSON(http.StatusConflict, echo.Map{"error": "insufficient stock"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to adjust stock"})
		}
	}
	if err := h.Sessions.AddToTotalTx(ctx, tx, s.ID, line.TotalCost.Sub(oldTotal), operatorID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update session total"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.JSON(http.StatusOK, echo.Map{"item": toLineResp(line)})
}

// Delete handles DELETE /v1/session-snacks/:id. The line is archived, its
// stock returned and the session total reduced, all in one transaction.
func (h *SessionSnackHandler) Delete(c echo.Context) error {
	operatorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session snack id"})
	}
	ctx := c.Request().Context()

	tx, err := h.Sessions.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	line, err := h.Lines.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionSnackNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session snack not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	s, err := h.Sessions.GetForUpdateTx(ctx, tx, line.GamingSessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if s.SessionStatus != model.SessionActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "session is not active"})
	}

	if err := h.Lines.ArchiveTx(ctx, tx, line.ID, operatorID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove session snack"})
	}
	if err := h.Snacks.AdjustStockTx(ctx, tx, line.SnackID, int32(line.Quantity), operatorID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to adjust stock"})
	}
	if err := h.Sessions.AddToTotalTx(ctx, tx, s.ID, line.TotalCost.Neg(), operatorID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update session total"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.NoContent(http.StatusNoContent)
}
