package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

// UserProfileHandler exposes CRUD on user profiles. Profiles are created
// during registration; these endpoints let staff maintain them afterwards.
type UserProfileHandler struct {
	Users *repository.UserRepo
}

func NewUserProfileHandler(u *repository.UserRepo) *UserProfileHandler {
	if u == nil {
		panic("nil repository passed to NewUserProfileHandler")
	}
	return &UserProfileHandler{Users: u}
}

type profileReq struct {
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
}

type profileResp struct {
	ID          uint64  `json:"id"`
	UserID      uint64  `json:"user_id"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Archive     bool    `json:"archive"`
}

func toProfileResp(p model.UserProfile) profileResp {
	out := profileResp{ID: p.ID, UserID: p.UserID, PhoneNumber: p.PhoneNumber,
		Address: p.Address, Archive: p.Archive}
	if p.DateOfBirth != nil {
		s := p.DateOfBirth.Format("2006-01-02")
		out.DateOfBirth = &s
	}
	return out
}

func parseDOB(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List handles GET /v1/user-profiles.
func (h *UserProfileHandler) List(c echo.Context) error {
	items, err := h.Users.ListProfiles(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load profiles"})
	}
	out := make([]profileResp, 0, len(items))
	for _, p := range items {
		out = append(out, toProfileResp(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/user-profiles/:id.
func (h *UserProfileHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid profile id"})
	}
	p, err := h.Users.GetProfile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toProfileResp(p)})
}

// Me handles GET /v1/user-profiles/me, returning the caller's own profile.
func (h *UserProfileHandler) Me(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	p, err := h.Users.GetProfileByUserID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toProfileResp(p)})
}

// Update handles PUT /v1/user-profiles/:id.
func (h *UserProfileHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid profile id"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	dob, err := parseDOB(req.DateOfBirth)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date_of_birth must be YYYY-MM-DD"})
	}
	ctx := c.Request().Context()
	p, err := h.Users.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	p.PhoneNumber = optional(req.PhoneNumber)
	p.Address = optional(req.Address)
	p.DateOfBirth = dob
	p.UpdatedBy = &userID
	if err := h.Users.UpdateProfile(ctx, &p); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update profile"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toProfileResp(p)})
}

// Delete handles DELETE /v1/user-profiles/:id (soft delete).
func (h *UserProfileHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid profile id"})
	}
	if err := h.Users.ArchiveProfile(c.Request().Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete profile"})
	}
	return c.NoContent(http.StatusNoContent)
}
