package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
	"github.com/iliyamo/gaming-lounge-backend/internal/pricing"
	"github.com/iliyamo/gaming-lounge-backend/internal/queue"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
	queue_publisher "github.com/iliyamo/gaming-lounge-backend/internal/service"
)

// maxDropdownPlayers bounds the player-count choices offered to the front
// desk. Pricing rows may still define wider intervals.
const maxDropdownPlayers = 4

// SessionHandler drives the session lifecycle: check-in, inspection,
// rebooking, time extension and closure. Check-in and closure run inside a
// transaction together with the station occupancy flip so two concurrent
// requests can never double-book a station.
type SessionHandler struct {
	Sessions  *repository.SessionRepo
	Stations  *repository.StationRepo
	Durations *repository.DurationRepo
	Snacks    *repository.SnackRepo
	Users     *repository.UserRepo
	Resolver  *pricing.Resolver
	Events    bool // publish queue events when true
}

func NewSessionHandler(s *repository.SessionRepo, st *repository.StationRepo, d *repository.DurationRepo, sn *repository.SnackRepo, u *repository.UserRepo, res *pricing.Resolver, events bool) *SessionHandler {
	if s == nil || st == nil || d == nil || sn == nil || u == nil || res == nil {
		panic("nil dependency passed to NewSessionHandler")
	}
	return &SessionHandler{Sessions: s, Stations: st, Durations: d, Snacks: sn, Users: u, Resolver: res, Events: events}
}

type sessionCreateReq struct {
	UserID          uint64 `json:"user_id"`
	StationID       uint64 `json:"station_id"`
	DurationID      uint64 `json:"duration_id"`
	NumberOfPlayers uint32 `json:"number_of_players"`
	IsWalkIn        bool   `json:"is_walk_in_customer"`
	Notes           string `json:"notes"`
}

type sessionUpdateReq struct {
	StationID       uint64 `json:"station_id"`
	DurationID      uint64 `json:"duration_id"`
	NumberOfPlayers uint32 `json:"number_of_players"`
	Notes           string `json:"notes"`
}

type sessionResp struct {
	ID                   uint64     `json:"id"`
	UserID               uint64     `json:"user_id"`
	StationID            uint64     `json:"station_id"`
	DurationID           uint64     `json:"duration_id"`
	NumberOfPlayers      uint32     `json:"number_of_players"`
	CheckInTime          time.Time  `json:"check_in_time"`
	CheckOutTime         *time.Time `json:"check_out_time,omitempty"`
	CalculatedGamingCost string     `json:"calculated_gaming_cost"`
	TotalSessionCost     string     `json:"total_session_cost"`
	SessionStatus        string     `json:"session_status"`
	IsWalkInCustomer     bool       `json:"is_walk_in_customer"`
	Notes                string     `json:"notes,omitempty"`
}

func toSessionResp(s model.GamingSession) sessionResp {
	return sessionResp{
		ID:                   s.ID,
		UserID:               s.UserID,
		StationID:            s.StationID,
		DurationID:           s.DurationID,
		NumberOfPlayers:      s.NumberOfPlayers,
		CheckInTime:          s.CheckInTime,
		CheckOutTime:         s.CheckOutTime,
		CalculatedGamingCost: s.CalculatedGamingCost.StringFixed(2),
		TotalSessionCost:     s.TotalSessionCost.StringFixed(2),
		SessionStatus:        s.SessionStatus,
		IsWalkInCustomer:     s.IsWalkInCustomer,
		Notes:                s.Notes,
	}
}

// Create handles POST /v1/sessions. The price is resolved from the pricing
// table at check-in and the station is claimed under a row lock, so two
// concurrent check-ins against the same station cannot both succeed.
func (h *SessionHandler) Create(c echo.Context) error {
	operatorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req sessionCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.StationID == 0 || req.DurationID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "station_id and duration_id are required"})
	}
	if req.NumberOfPlayers == 0 {
		req.NumberOfPlayers = 1
	}
	customerID := req.UserID
	if customerID == 0 {
		customerID = operatorID
	}
	ctx := c.Request().Context()

	if _, err := h.Users.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	dur, err := h.Durations.GetByID(ctx, req.DurationID)
	if err != nil {
		if errors.Is(err, repository.ErrDurationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "duration not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if dur.Archive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "duration not found"})
	}

	checkIn := time.Now().UTC()
	checkOut, err := pricing.Window(dur, checkIn)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "invalid duration configuration"})
	}

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

	station, err := h.Stations.GetForUpdateTx(ctx, tx, req.StationID)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !station.IsActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "station is already occupied"})
	}

	price, err := h.Resolver.Resolve(ctx, pricing.Lookup{
		ServiceTypeID: station.ServiceTypeID,
		GameTypeID:    station.GameTypeID,
		DurationID:    dur.ID,
		PlayerCount:   req.NumberOfPlayers,
	})
	if err != nil {
		if errors.Is(err, pricing.ErrPriceNotConfigured) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		}
		if errors.Is(err, pricing.ErrPriceAmbiguous) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to resolve price"})
	}

	s := model.GamingSession{
		UserID:               customerID,
		StationID:            station.ID,
		DurationID:           dur.ID,
		NumberOfPlayers:      req.NumberOfPlayers,
		CheckInTime:          checkIn,
		CheckOutTime:         &checkOut,
		CalculatedGamingCost: price,
		TotalSessionCost:     price,
		SessionStatus:        model.SessionActive,
		IsWalkInCustomer:     req.IsWalkIn,
		Notes:                strings.TrimSpace(req.Notes),
		CreatedBy:            &operatorID,
		UpdatedBy:            &operatorID,
	}
	if err := h.Sessions.CreateTx(ctx, tx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create session"})
	}
	if err := h.Stations.ClaimTx(ctx, tx, station.ID, operatorID); err != nil {
		if errors.Is(err, repository.ErrStationOccupied) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "station is already occupied"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to claim station"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	if h.Events {
		ev := queue.SessionOpenedEvent{
			SessionID:       s.ID,
			UserID:          s.UserID,
			StationID:       station.ID,
			StationName:     station.Name,
			NumberOfPlayers: s.NumberOfPlayers,
			CheckInTime:     checkIn.Format(time.RFC3339),
			CheckOutTime:    checkOut.Format(time.RFC3339),
			GamingCost:      price.StringFixed(2),
			IsWalkIn:        s.IsWalkInCustomer,
		}
		go func() { _ = queue_publisher.PublishSessionOpened(context.Background(), ev) }()
	}

	return c.JSON(http.StatusCreated, echo.Map{"item": toSessionResp(s)})
}

// Get handles GET /v1/sessions/:id and returns the joined detail view.
func (h *SessionHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
	}
	detail, err := h.Sessions.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": detail})
}

// List handles GET /v1/sessions.
func (h *SessionHandler) List(c echo.Context) error {
	items, err := h.Sessions.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load sessions"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": toSessionResps(items)})
}

// ListActive handles GET /v1/sessions/active.
func (h *SessionHandler) ListActive(c echo.Context) error {
	items, err := h.Sessions.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load sessions"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": toSessionResps(items)})
}

// ListPast handles GET /v1/sessions/past.
func (h *SessionHandler) ListPast(c echo.Context) error {
	items, err := h.Sessions.ListPast(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load sessions"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": toSessionResps(items)})
}

func toSessionResps(items []model.GamingSession) []sessionResp {
	out := make([]sessionResp, 0, len(items))
	for _, s := range items {
		out = append(out, toSessionResp(s))
	}
	return out
}

// Update handles PUT /v1/sessions/:id. A plain field update (notes only)
// never touches pricing. When the station, duration or player count change,
// the gaming cost is re-resolved for the new dimensions and the totals are
// replaced, not accumulated: the new total is the fresh gaming cost plus
// the existing snack line sum. A station change frees the old one and
// claims the new one in the same transaction.
func (h *SessionHandler) Update(c echo.Context) error {
	operatorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
	}
	var req sessionUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
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

	s, err := h.Sessions.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if s.SessionStatus != model.SessionActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "session is not active"})
	}

	if req.StationID == 0 {
		req.StationID = s.StationID
	}
	if req.DurationID == 0 {
		req.DurationID = s.DurationID
	}
	if req.NumberOfPlayers == 0 {
		req.NumberOfPlayers = s.NumberOfPlayers
	}

	// Player count participates because console-class pricing depends on it.
	dimsChanged := req.StationID != s.StationID ||
		req.DurationID != s.DurationID ||
		req.NumberOfPlayers != s.NumberOfPlayers

	if dimsChanged {
		dur, err := h.Durations.GetByID(ctx, req.DurationID)
		if err != nil {
			if errors.Is(err, repository.ErrDurationNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "duration not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}

		var station model.Station
		if req.StationID != s.StationID {
			station, err = h.Stations.GetForUpdateTx(ctx, tx, req.StationID)
			if err != nil {
				if errors.Is(err, repository.ErrStationNotFound) {
					return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
			}
			if !station.IsActive {
				return c.JSON(http.StatusConflict, echo.Map{"error": "station is already occupied"})
			}
		} else {
			station, err = h.Stations.GetByID(ctx, req.StationID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
			}
		}

		price, err := h.Resolver.Resolve(ctx, pricing.Lookup{
			ServiceTypeID: station.ServiceTypeID,
			GameTypeID:    station.GameTypeID,
			DurationID:    dur.ID,
			PlayerCount:   req.NumberOfPlayers,
		})
		if err != nil {
			if errors.Is(err, pricing.ErrPriceNotConfigured) {
				return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
			}
			if errors.Is(err, pricing.ErrPriceAmbiguous) {
				return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to resolve price"})
		}

		checkOut, err := pricing.Window(dur, s.CheckInTime)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "invalid duration configuration"})
		}

		// The snack share of the old total carries over unchanged; only the
		// gaming component is replaced.
		snackTotal := s.TotalSessionCost.Sub(s.CalculatedGamingCost)
		oldStationID := s.StationID

		s.StationID = station.ID
		s.DurationID = dur.ID
		s.NumberOfPlayers = req.NumberOfPlayers
		s.CheckOutTime = &checkOut
		s.CalculatedGamingCost = price
		s.TotalSessionCost = price.Add(snackTotal)

		if oldStationID != station.ID {
			if err := h.Stations.SetActiveTx(ctx, tx, oldStationID, true, operatorID); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to release station"})
			}
			if err := h.Stations.ClaimTx(ctx, tx, station.ID, operatorID); err != nil {
				if errors.Is(err, repository.ErrStationOccupied) {
					return c.JSON(http.StatusConflict, echo.Map{"error": "station is already occupied"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to claim station"})
			}
		}
	}

	if strings.TrimSpace(req.Notes) != "" {
		s.Notes = strings.TrimSpace(req.Notes)
	}
	s.UpdatedBy = &operatorID

	if err := h.Sessions.UpdateTx(ctx, tx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update session"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.JSON(http.StatusOK, echo.Map{"item": toSessionResp(s)})
}

// AddTime handles POST /v1/sessions/:id/add-time. The extension's price is
// resolved for the given duration and added to both cost columns; the
// expected check-out moves forward by the extension window.
func (h *SessionHandler) AddTime(c echo.Context) error {
	operatorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
	}
	var req struct {
		DurationID uint64 `json:"duration_id"`
	}
	if err := c.Bind(&req); err != nil || req.DurationID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration_id is required"})
	}
	ctx := c.Request().Context()

	dur, err := h.Durations.GetByID(ctx, req.DurationID)
	if err != nil {
		if errors.Is(err, repository.ErrDurationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "duration not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

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

	s, err := h.Sessions.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if s.SessionStatus != model.SessionActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "session is not active"})
	}

	station, err := h.Stations.GetByID(ctx, s.StationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	extra, err := h.Resolver.Resolve(ctx, pricing.Lookup{
		ServiceTypeID: station.ServiceTypeID,
		GameTypeID:    station.GameTypeID,
		DurationID:    dur.ID,
		PlayerCount:   s.NumberOfPlayers,
	})
	if err != nil {
		if errors.Is(err, pricing.ErrPriceNotConfigured) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		}
		if errors.Is(err, pricing.ErrPriceAmbiguous) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to resolve price"})
	}

	base := time.Now().UTC()
	if s.CheckOutTime != nil && s.CheckOutTime.After(base) {
		base = *s.CheckOutTime
	}
	newCheckOut, err := pricing.Window(dur, base)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "invalid duration configuration"})
	}

	if err := h.Sessions.ExtendCheckOutTx(ctx, tx, s.ID, newCheckOut, extra, operatorID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to extend session"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.JSON(http.StatusOK, echo.Map{
		"session_id":     s.ID,
		"check_out_time": newCheckOut.Format(time.RFC3339),
		"added_cost":     extra.StringFixed(2),
	})
}

// Destroy handles DELETE /v1/sessions/:id. The session moves to a terminal
// status (?status=CANCELLED, default COMPLETED), is archived, and its
// station is freed in the same transaction.
func (h *SessionHandler) Destroy(c echo.Context) error {
	operatorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
	}
	status := strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))
	if status == "" {
		status = model.SessionCompleted
	}
	if !model.IsTerminalStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be COMPLETED or CANCELLED"})
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

	s, err := h.Sessions.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if s.SessionStatus != model.SessionActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "session already closed"})
	}

	closedAt := time.Now().UTC()
	if err := h.Sessions.CloseTx(ctx, tx, s.ID, status, closedAt, operatorID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to close session"})
	}
	if err := h.Stations.SetActiveTx(ctx, tx, s.StationID, true, operatorID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to release station"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	if h.Events {
		station, serr := h.Stations.GetByID(ctx, s.StationID)
		name := ""
		if serr == nil {
			name = station.Name
		}
		ev := queue.SessionClosedEvent{
			SessionID:        s.ID,
			UserID:           s.UserID,
			StationID:        s.StationID,
			StationName:      name,
			SessionStatus:    status,
			TotalSessionCost: s.TotalSessionCost.StringFixed(2),
			ClosedAt:         closedAt.Format(time.RFC3339),
		}
		go func() { _ = queue_publisher.PublishSessionClosed(context.Background(), ev) }()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"session_id":     s.ID,
		"session_status": status,
	})
}

// Dropdowns handles GET /v1/sessions/drop-downs. It returns the choices the
// front desk needs to open a session: free stations, durations, available
// snacks and the player-count range.
func (h *SessionHandler) Dropdowns(c echo.Context) error {
	ctx := c.Request().Context()
	stations, err := h.Stations.ListFree(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load stations"})
	}
	durations, err := h.Durations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load durations"})
	}
	snacks, err := h.Snacks.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load snacks"})
	}

	stationItems := make([]stationResp, 0, len(stations))
	for _, s := range stations {
		stationItems = append(stationItems, toStationResp(s))
	}
	durationItems := make([]durationResp, 0, len(durations))
	for _, d := range durations {
		durationItems = append(durationItems, toDurationResp(d))
	}
	snackItems := make([]snackResp, 0, len(snacks))
	for _, s := range snacks {
		if s.IsAvailable && s.StockQuantity > 0 {
			snackItems = append(snackItems, toSnackResp(s))
		}
	}
	players := make([]uint32, 0, maxDropdownPlayers)
	for i := uint32(1); i <= maxDropdownPlayers; i++ {
		players = append(players, i)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"stations":      stationItems,
		"durations":     durationItems,
		"snacks":        snackItems,
		"player_counts": players,
	})
}
