// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/gaming-lounge-backend/internal/config"
	"github.com/iliyamo/gaming-lounge-backend/internal/handler"
	"github.com/iliyamo/gaming-lounge-backend/internal/middleware"
	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// Handlers bundles every handler the API mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	Profiles      *handler.UserProfileHandler
	ServiceTypes  *handler.ServiceTypeHandler
	GameTypes     *handler.GameTypeHandler
	Stations      *handler.StationHandler
	Durations     *handler.DurationHandler
	Snacks        *handler.SnackHandler
	ServicePrices *handler.ServicePriceHandler
	Sessions      *handler.SessionHandler
	SessionSnacks *handler.SessionSnackHandler
	Payments      *handler.PaymentHandler
}

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Unauthenticated
// operations live under /v1/auth; /v1/me requires a token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
	auth.GET("/me", a.Me)
}

// RegisterAPI registers every protected endpoint under /v1. All routes
// require a valid token with an ADMIN or STAFF role; reads additionally go
// through the Redis response cache and the token-bucket rate limiter when
// Redis is configured.
func RegisterAPI(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client) {
	cacheCfg := config.LoadCacheConfig()
	rateCfg := config.LoadRateLimitConfig()

	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))
	v1.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
	v1.Use(middleware.NewTokenBucket(rateCfg, rdb))

	cached := middleware.NewRedisCache(cacheCfg, rdb)

	// catalogs
	v1.GET("/service-types", h.ServiceTypes.List, cached)
	v1.GET("/service-types/:id", h.ServiceTypes.Get, cached)
	v1.POST("/service-types", h.ServiceTypes.Create)
	v1.PUT("/service-types/:id", h.ServiceTypes.Update)
	v1.DELETE("/service-types/:id", h.ServiceTypes.Delete)

	v1.GET("/game-types", h.GameTypes.List, cached)
	v1.GET("/game-types/:id", h.GameTypes.Get, cached)
	v1.POST("/game-types", h.GameTypes.Create)
	v1.PUT("/game-types/:id", h.GameTypes.Update)
	v1.DELETE("/game-types/:id", h.GameTypes.Delete)

	v1.GET("/stations", h.Stations.List)
	v1.GET("/stations/:id", h.Stations.Get)
	v1.POST("/stations", h.Stations.Create)
	v1.PUT("/stations/:id", h.Stations.Update)
	v1.DELETE("/stations/:id", h.Stations.Delete)

	v1.GET("/durations", h.Durations.List, cached)
	v1.GET("/durations/:id", h.Durations.Get, cached)
	v1.POST("/durations", h.Durations.Create)
	v1.PUT("/durations/:id", h.Durations.Update)
	v1.DELETE("/durations/:id", h.Durations.Delete)

	v1.GET("/snacks", h.Snacks.List)
	v1.GET("/snacks/:id", h.Snacks.Get)
	v1.POST("/snacks", h.Snacks.Create)
	v1.PUT("/snacks/:id", h.Snacks.Update)
	v1.DELETE("/snacks/:id", h.Snacks.Delete)

	v1.GET("/service-prices", h.ServicePrices.List, cached)
	v1.GET("/service-prices/:id", h.ServicePrices.Get, cached)
	v1.POST("/service-prices", h.ServicePrices.Create)
	v1.PUT("/service-prices/:id", h.ServicePrices.Update)
	v1.DELETE("/service-prices/:id", h.ServicePrices.Delete)

	// profiles
	v1.GET("/user-profiles", h.Profiles.List)
	v1.GET("/user-profiles/me", h.Profiles.Me)
	v1.GET("/user-profiles/:id", h.Profiles.Get)
	v1.PUT("/user-profiles/:id", h.Profiles.Update)
	v1.DELETE("/user-profiles/:id", h.Profiles.Delete)

	// session lifecycle; dropdowns and the active/past views are
	// registered before /sessions/:id so Echo matches them first
	v1.GET("/sessions/drop-downs", h.Sessions.Dropdowns)
	v1.GET("/sessions/active", h.Sessions.ListActive)
	v1.GET("/sessions/past", h.Sessions.ListPast)
	v1.GET("/sessions", h.Sessions.List)
	v1.GET("/sessions/:id", h.Sessions.Get)
	v1.POST("/sessions", h.Sessions.Create)
	v1.PUT("/sessions/:id", h.Sessions.Update)
	v1.DELETE("/sessions/:id", h.Sessions.Destroy)
	v1.POST("/sessions/:id/add-time", h.Sessions.AddTime)

	// snack lines
	v1.GET("/sessions/:id/snacks", h.SessionSnacks.List)
	v1.POST("/session-snacks", h.SessionSnacks.Attach)
	v1.PUT("/session-snacks/:id", h.SessionSnacks.UpdateQuantity)
	v1.DELETE("/session-snacks/:id", h.SessionSnacks.Delete)

	// payment ledger
	v1.POST("/payments", h.Payments.Create)
	v1.GET("/payments/:id", h.Payments.Get)
	v1.GET("/sessions/:id/payments", h.Payments.ListBySession)
}
