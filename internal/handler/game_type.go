package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

// GameTypeHandler exposes CRUD on the game_types catalog.
type GameTypeHandler struct {
	Repo         *repository.GameTypeRepo
	ServiceTypes *repository.ServiceTypeRepo
}

func NewGameTypeHandler(r *repository.GameTypeRepo, st *repository.ServiceTypeRepo) *GameTypeHandler {
	if r == nil || st == nil {
		panic("nil repository passed to NewGameTypeHandler")
	}
	return &GameTypeHandler{Repo: r, ServiceTypes: st}
}

type gameTypeReq struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	ServiceTypeID uint64 `json:"service_type_id"`
}

type gameTypeResp struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	ServiceTypeID uint64  `json:"service_type_id"`
	Archive       bool    `json:"archive"`
}

func toGameTypeResp(gt model.GameType) gameTypeResp {
	return gameTypeResp{ID: gt.ID, Name: gt.Name, Description: gt.Description,
		ServiceTypeID: gt.ServiceTypeID, Archive: gt.Archive}
}

// List handles GET /v1/game-types.
func (h *GameTypeHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load game types"})
	}
	out := make([]gameTypeResp, 0, len(items))
	for _, gt := range items {
		out = append(out, toGameTypeResp(gt))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/game-types/:id.
func (h *GameTypeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game type id"})
	}
	gt, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGameTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toGameTypeResp(gt)})
}

// Create handles POST /v1/game-types. The referenced service type must
// exist and not be archived.
func (h *GameTypeHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req gameTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.ServiceTypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and service_type_id are required"})
	}
	ctx := c.Request().Context()
	if st, err := h.ServiceTypes.GetByID(ctx, req.ServiceTypeID); err != nil || st.Archive {
		if err != nil && !errors.Is(err, repository.ErrServiceTypeNotFound) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "service type not found"})
	}
	gt := model.GameType{
		Name:          req.Name,
		Description:   optional(req.Description),
		ServiceTypeID: req.ServiceTypeID,
		CreatedBy:     &userID,
		UpdatedBy:     &userID,
	}
	if err := h.Repo.Create(ctx, &gt); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "game type already exists for this service type"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create game type"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": toGameTypeResp(gt)})
}

// Update handles PUT /v1/game-types/:id.
func (h *GameTypeHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game type id"})
	}
	var req gameTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.ServiceTypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and service_type_id are required"})
	}
	gt := model.GameType{
		ID:            id,
		Name:          req.Name,
		Description:   optional(req.Description),
		ServiceTypeID: req.ServiceTypeID,
		UpdatedBy:     &userID,
	}
	if err := h.Repo.Update(c.Request().Context(), &gt); err != nil {
		if errors.Is(err, repository.ErrGameTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game type not found"})
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "game type already exists for this service type"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update game type"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toGameTypeResp(gt)})
}

// Delete handles DELETE /v1/game-types/:id (soft delete).
func (h *GameTypeHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid game type id"})
	}
	if err := h.Repo.Archive(c.Request().Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrGameTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "game type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete game type"})
	}
	return c.NoContent(http.StatusNoContent)
}
