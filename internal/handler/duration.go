package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

// DurationHandler exposes CRUD on the durations catalog.
type DurationHandler struct {
	Repo *repository.DurationRepo
}

func NewDurationHandler(r *repository.DurationRepo) *DurationHandler {
	if r == nil {
		panic("nil repository passed to NewDurationHandler")
	}
	return &DurationHandler{Repo: r}
}

type durationReq struct {
	Type     string          `json:"type"` // MINUTE | HOUR
	Duration decimal.Decimal `json:"duration"`
}

type durationResp struct {
	ID       uint64          `json:"id"`
	Type     string          `json:"type"`
	Duration decimal.Decimal `json:"duration"`
	Archive  bool            `json:"archive"`
}

func toDurationResp(d model.Duration) durationResp {
	return durationResp{ID: d.ID, Type: d.Type, Duration: d.Duration, Archive: d.Archive}
}

func validDurationReq(req *durationReq) string {
	req.Type = strings.ToUpper(strings.TrimSpace(req.Type))
	if req.Type != model.DurationMinute && req.Type != model.DurationHour {
		return "type must be MINUTE or HOUR"
	}
	if req.Duration.LessThanOrEqual(decimal.Zero) {
		return "duration must be positive"
	}
	return ""
}

// List handles GET /v1/durations.
func (h *DurationHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load durations"})
	}
	out := make([]durationResp, 0, len(items))
	for _, d := range items {
		out = append(out, toDurationResp(d))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/durations/:id.
func (h *DurationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid duration id"})
	}
	d, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrDurationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "duration not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toDurationResp(d)})
}

// Create handles POST /v1/durations.
func (h *DurationHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req durationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validDurationReq(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	d := model.Duration{
		Type:      req.Type,
		Duration:  req.Duration,
		CreatedBy: &userID,
		UpdatedBy: &userID,
	}
	if err := h.Repo.Create(c.Request().Context(), &d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create duration"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": toDurationResp(d)})
}

// Update handles PUT /v1/durations/:id.
func (h *DurationHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid duration id"})
	}
	var req durationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validDurationReq(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	d := model.Duration{
		ID:        id,
		Type:      req.Type,
		Duration:  req.Duration,
		UpdatedBy: &userID,
	}
	if err := h.Repo.Update(c.Request().Context(), &d); err != nil {
		if errors.Is(err, repository.ErrDurationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "duration not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update duration"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toDurationResp(d)})
}

// Delete handles DELETE /v1/durations/:id (soft delete).
func (h *DurationHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid duration id"})
	}
	if err := h.Repo.Archive(c.Request().Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrDurationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "duration not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete duration"})
	}
	return c.NoContent(http.StatusNoContent)
}
