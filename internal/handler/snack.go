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

// SnackHandler exposes CRUD on the snack inventory.
type SnackHandler struct {
	Repo *repository.SnackRepo
}

func NewSnackHandler(r *repository.SnackRepo) *SnackHandler {
	if r == nil {
		panic("nil repository passed to NewSnackHandler")
	}
	return &SnackHandler{Repo: r}
}

type snackReq struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int32           `json:"stock_quantity"`
	RestockLevel  int32           `json:"restock_level"`
	IsAvailable   *bool           `json:"is_available"`
}

type snackResp struct {
	ID            uint64          `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int32           `json:"stock_quantity"`
	RestockLevel  int32           `json:"restock_level"`
	IsAvailable   bool            `json:"is_available"`
	NeedsRestock  bool            `json:"needs_restock"`
	Archive       bool            `json:"archive"`
}

func toSnackResp(s model.Snack) snackResp {
	return snackResp{ID: s.ID, Name: s.Name, Description: s.Description,
		Category: s.Category, UnitPrice: s.UnitPrice,
		StockQuantity: s.StockQuantity, RestockLevel: s.RestockLevel,
		IsAvailable: s.IsAvailable, NeedsRestock: s.NeedsRestock(), Archive: s.Archive}
}

func validSnackReq(req *snackReq) string {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.ToUpper(strings.TrimSpace(req.Category))
	if req.Name == "" {
		return "name is required"
	}
	if !model.ValidSnackCategory(req.Category) {
		return "category must be DRINKS, SNACKS or MEALS"
	}
	if req.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return "unit_price must be positive"
	}
	if req.StockQuantity < 0 || req.RestockLevel < 0 {
		return "stock_quantity and restock_level must not be negative"
	}
	return ""
}

// List handles GET /v1/snacks.
func (h *SnackHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load snacks"})
	}
	out := make([]snackResp, 0, len(items))
	for _, s := range items {
		out = append(out, toSnackResp(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/snacks/:id.
func (h *SnackHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid snack id"})
	}
	s, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSnackNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "snack not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toSnackResp(s)})
}

// Create handles POST /v1/snacks.
func (h *SnackHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req snackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validSnackReq(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	s := model.Snack{
		Name:          req.Name,
		Description:   optional(req.Description),
		Category:      req.Category,
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.StockQuantity,
		RestockLevel:  req.RestockLevel,
		IsAvailable:   available,
		CreatedBy:     &userID,
		UpdatedBy:     &userID,
	}
	if err := h.Repo.Create(c.Request().Context(), &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create snack"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": toSnackResp(s)})
}

// Update handles PUT /v1/snacks/:id. Price changes here never touch
// existing session line items; those keep their snapshot.
func (h *SnackHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid snack id"})
	}
	var req snackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validSnackReq(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	s := model.Snack{
		ID:            id,
		Name:          req.Name,
		Description:   optional(req.Description),
		Category:      req.Category,
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.StockQuantity,
		RestockLevel:  req.RestockLevel,
		IsAvailable:   available,
		UpdatedBy:     &userID,
	}
	if err := h.Repo.Update(c.Request().Context(), &s); err != nil {
		if errors.Is(err, repository.ErrSnackNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "snack not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update snack"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toSnackResp(s)})
}

// Delete handles DELETE /v1/snacks/:id (soft delete).
func (h *SnackHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid snack id"})
	}
	if err := h.Repo.Archive(c.Request().Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrSnackNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "snack not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete snack"})
	}
	return c.NoContent(http.StatusNoContent)
}
