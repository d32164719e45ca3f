package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

// ServicePriceHandler exposes CRUD on the pricing table. The dimension
// tuple is unique; conflicting rows are rejected with 409 so the resolver
// never faces an ambiguous catalog.
type ServicePriceHandler struct {
	Repo         *repository.ServicePriceRepo
	ServiceTypes *repository.ServiceTypeRepo
	GameTypes    *repository.GameTypeRepo
	Durations    *repository.DurationRepo
}

func NewServicePriceHandler(r *repository.ServicePriceRepo, st *repository.ServiceTypeRepo, gt *repository.GameTypeRepo, d *repository.DurationRepo) *ServicePriceHandler {
	if r == nil || st == nil || gt == nil || d == nil {
		panic("nil repository passed to NewServicePriceHandler")
	}
	return &ServicePriceHandler{Repo: r, ServiceTypes: st, GameTypes: gt, Durations: d}
}

type servicePriceReq struct {
	ServiceTypeID  uint64          `json:"service_type_id"`
	GameTypeID     uint64          `json:"game_type_id"`
	DurationID     uint64          `json:"duration_id"`
	PlayerCount    *uint32         `json:"player_count"`
	MaxPlayerCount uint32          `json:"max_player_count"`
	Price          decimal.Decimal `json:"price"`
}

type servicePriceResp struct {
	ID             uint64          `json:"id"`
	ServiceTypeID  uint64          `json:"service_type_id"`
	GameTypeID     uint64          `json:"game_type_id"`
	DurationID     uint64          `json:"duration_id"`
	PlayerCount    *uint32         `json:"player_count,omitempty"`
	MaxPlayerCount uint32          `json:"max_player_count"`
	Price          decimal.Decimal `json:"price"`
	Archive        bool            `json:"archive"`
}

func toServicePriceResp(p model.ServicePrice) servicePriceResp {
	return servicePriceResp{ID: p.ID, ServiceTypeID: p.ServiceTypeID, GameTypeID: p.GameTypeID,
		DurationID: p.DurationID, PlayerCount: p.PlayerCount, MaxPlayerCount: p.MaxPlayerCount,
		Price: p.Price, Archive: p.Archive}
}

func (h *ServicePriceHandler) validateReq(c echo.Context, req *servicePriceReq) (int, string) {
	if req.ServiceTypeID == 0 || req.GameTypeID == 0 || req.DurationID == 0 {
		return http.StatusBadRequest, "service_type_id, game_type_id and duration_id are required"
	}
	if req.MaxPlayerCount == 0 {
		return http.StatusBadRequest, "max_player_count must be positive"
	}
	if req.PlayerCount != nil && *req.PlayerCount == 0 {
		return http.StatusBadRequest, "player_count must be at least 1"
	}
	if req.PlayerCount != nil && *req.PlayerCount > req.MaxPlayerCount {
		return http.StatusBadRequest, "player_count must not exceed max_player_count"
	}
	// Zero is a valid price (free play); only negatives are rejected.
	if req.Price.LessThan(decimal.Zero) {
		return http.StatusBadRequest, "price must not be negative"
	}
	ctx := c.Request().Context()
	if _, err := h.ServiceTypes.GetByID(ctx, req.ServiceTypeID); err != nil {
		if errors.Is(err, repository.ErrServiceTypeNotFound) {
			return http.StatusNotFound, "service type not found"
		}
		return http.StatusInternalServerError, "database error"
	}
	gt, err := h.GameTypes.GetByID(ctx, req.GameTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrGameTypeNotFound) {
			return http.StatusNotFound, "game type not found"
		}
		return http.StatusInternalServerError, "database error"
	}
	if gt.ServiceTypeID != req.ServiceTypeID {
		return http.StatusBadRequest, "game type does not belong to the service type"
	}
	if _, err := h.Durations.GetByID(ctx, req.DurationID); err != nil {
		if errors.Is(err, repository.ErrDurationNotFound) {
			return http.StatusNotFound, "duration not found"
		}
		return http.StatusInternalServerError, "database error"
	}
	return 0, ""
}

// List handles GET /v1/service-prices.
func (h *ServicePriceHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load service prices"})
	}
	out := make([]servicePriceResp, 0, len(items))
	for _, p := range items {
		out = append(out, toServicePriceResp(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/service-prices/:id.
func (h *ServicePriceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service price id"})
	}
	p, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrServicePriceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service price not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toServicePriceResp(p)})
}

// Create handles POST /v1/service-prices.
func (h *ServicePriceHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req servicePriceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if code, msg := h.validateReq(c, &req); code != 0 {
		return c.JSON(code, echo.Map{"error": msg})
	}
	p := model.ServicePrice{
		ServiceTypeID:  req.ServiceTypeID,
		GameTypeID:     req.GameTypeID,
		DurationID:     req.DurationID,
		PlayerCount:    req.PlayerCount,
		MaxPlayerCount: req.MaxPlayerCount,
		Price:          req.Price,
		CreatedBy:      &userID,
		UpdatedBy:      &userID,
	}
	if err := h.Repo.Create(c.Request().Context(), &p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "price already configured for these dimensions"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create service price"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": toServicePriceResp(p)})
}

// Update handles PUT /v1/service-prices/:id.
func (h *ServicePriceHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service price id"})
	}
	var req servicePriceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if code, msg := h.validateReq(c, &req); code != 0 {
		return c.JSON(code, echo.Map{"error": msg})
	}
	p := model.ServicePrice{
		ID:             id,
		ServiceTypeID:  req.ServiceTypeID,
		GameTypeID:     req.GameTypeID,
		DurationID:     req.DurationID,
		PlayerCount:    req.PlayerCount,
		MaxPlayerCount: req.MaxPlayerCount,
		Price:          req.Price,
		UpdatedBy:      &userID,
	}
	if err := h.Repo.Update(c.Request().Context(), &p); err != nil {
		if errors.Is(err, repository.ErrServicePriceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service price not found"})
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "price already configured for these dimensions"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update service price"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toServicePriceResp(p)})
}

// Delete handles DELETE /v1/service-prices/:id (soft delete).
func (h *ServicePriceHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service price id"})
	}
	if err := h.Repo.Archive(c.Request().Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrServicePriceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service price not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete service price"})
	}
	return c.NoContent(http.StatusNoContent)
}
