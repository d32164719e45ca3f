package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

// ServiceTypeHandler exposes CRUD on the service_types catalog.
type ServiceTypeHandler struct {
	Repo *repository.ServiceTypeRepo
}

func NewServiceTypeHandler(r *repository.ServiceTypeRepo) *ServiceTypeHandler {
	if r == nil {
		panic("nil repository passed to NewServiceTypeHandler")
	}
	return &ServiceTypeHandler{Repo: r}
}

type serviceTypeReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type serviceTypeResp struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Archive     bool    `json:"archive"`
}

func toServiceTypeResp(st model.ServiceType) serviceTypeResp {
	return serviceTypeResp{ID: st.ID, Name: st.Name, Description: st.Description, Archive: st.Archive}
}

// List handles GET /v1/service-types.
func (h *ServiceTypeHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load service types"})
	}
	out := make([]serviceTypeResp, 0, len(items))
	for _, st := range items {
		out = append(out, toServiceTypeResp(st))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/service-types/:id.
func (h *ServiceTypeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service type id"})
	}
	st, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toServiceTypeResp(st)})
}

// Create handles POST /v1/service-types.
func (h *ServiceTypeHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req serviceTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	st := model.ServiceType{
		Name:        req.Name,
		Description: optional(req.Description),
		CreatedBy:   &userID,
		UpdatedBy:   &userID,
	}
	if err := h.Repo.Create(c.Request().Context(), &st); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "service type name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create service type"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": toServiceTypeResp(st)})
}

// Update handles PUT /v1/service-types/:id.
func (h *ServiceTypeHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service type id"})
	}
	var req serviceTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	st := model.ServiceType{
		ID:          id,
		Name:        req.Name,
		Description: optional(req.Description),
		UpdatedBy:   &userID,
	}
	if err := h.Repo.Update(c.Request().Context(), &st); err != nil {
		if errors.Is(err, repository.ErrServiceTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service type not found"})
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "service type name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update service type"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toServiceTypeResp(st)})
}

// Delete handles DELETE /v1/service-types/:id (soft delete).
func (h *ServiceTypeHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service type id"})
	}
	if err := h.Repo.Archive(c.Request().Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrServiceTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete service type"})
	}
	return c.NoContent(http.StatusNoContent)
}
