package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

// StationHandler exposes CRUD on stations. The occupancy flag is read-only
// here; only the session lifecycle flips it.
type StationHandler struct {
	Repo      *repository.StationRepo
	GameTypes *repository.GameTypeRepo
}

func NewStationHandler(r *repository.StationRepo, gt *repository.GameTypeRepo) *StationHandler {
	if r == nil || gt == nil {
		panic("nil repository passed to NewStationHandler")
	}
	return &StationHandler{Repo: r, GameTypes: gt}
}

type stationReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GameTypeID  uint64 `json:"game_type_id"`
}

type stationResp struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	GameTypeID    uint64  `json:"game_type_id"`
	ServiceTypeID uint64  `json:"service_type_id"`
	IsActive      bool    `json:"is_active"`
	Archive       bool    `json:"archive"`
}

func toStationResp(s model.Station) stationResp {
	return stationResp{ID: s.ID, Name: s.Name, Description: s.Description,
		GameTypeID: s.GameTypeID, ServiceTypeID: s.ServiceTypeID,
		IsActive: s.IsActive, Archive: s.Archive}
}

// List handles GET /v1/stations. With ?free=true only currently free
// stations are returned.
func (h *StationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		items []model.Station
		err   error
	)
	if c.QueryParam("free") == "true" {
		items, err = h.Repo.ListFree(ctx)
	} else {
		items, err = h.Repo.List(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load stations"})
	}
	out := make([]stationResp, 0, len(items))
	for _, s := range items {
		out = append(out, toStationResp(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/stations/:id.
func (h *StationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	s, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toStationResp(s)})
}

// Create handles POST /v1/stations. The service type is derived from the
// game type so the two can never disagree.
func (h *StationHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req stationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.GameTypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and game_type_id are required"})
	}
	ctx := c.Request().Context()
	gt, err := h.GameTypes.GetByID(ctx, req.GameTypeID)
	if err != nil || gt.Archive {
		if err != nil && !errors.Is(err, repository.ErrGameTypeNotFound) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "game type not found"})
	}
	s := model.Station{
		Name:          req.Name,
		Description:   optional(req.Description),
		GameTypeID:    gt.ID,
		ServiceTypeID: gt.ServiceTypeID,
		IsActive:      true, // new stations start free
		CreatedBy:     &userID,
		UpdatedBy:     &userID,
	}
	if err := h.Repo.Create(ctx, &s); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "station name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create station"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": toStationResp(s)})
}

// Update handles PUT /v1/stations/:id. The occupancy flag is never updated
// through this endpoint.
func (h *StationHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	var req stationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.GameTypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and game_type_id are required"})
	}
	ctx := c.Request().Context()
	gt, err := h.GameTypes.GetByID(ctx, req.GameTypeID)
	if err != nil || gt.Archive {
		if err != nil && !errors.Is(err, repository.ErrGameTypeNotFound) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "game type not found"})
	}
	s := model.Station{
		ID:            id,
		Name:          req.Name,
		Description:   optional(req.Description),
		GameTypeID:    gt.ID,
		ServiceTypeID: gt.ServiceTypeID,
		UpdatedBy:     &userID,
	}
	if err := h.Repo.Update(ctx, &s); err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "station name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update station"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toStationResp(s)})
}

// Delete handles DELETE /v1/stations/:id (soft delete). An occupied
// station cannot be archived while its session is live.
func (h *StationHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid station id"})
	}
	ctx := c.Request().Context()
	s, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !s.IsActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "station has an active session"})
	}
	if err := h.Repo.Archive(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete station"})
	}
	return c.NoContent(http.StatusNoContent)
}
