// Package router wires the gateway's HTTP routes to their handlers and
// middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/cineseat/booking-gateway/internal/config"
	"github.com/cineseat/booking-gateway/internal/handler"
	"github.com/cineseat/booking-gateway/internal/middleware"
	"github.com/cineseat/booking-gateway/internal/model"
)

// Handlers groups everything the router needs to register routes.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Auth    *handler.AuthHandler
	Booking *handler.BookingHandler
	Admin   *handler.AdminHandler
}

// Register sets up all routes.  The public catalogue is cached and
// unauthenticated; booking requires any authenticated user; the
// back-office requires the ADMIN role.  Rate limiting applies across
// the board.  rdb may be nil, which disables caching and rate limiting.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	e.GET("/healthz", handler.Health)

	// Public catalogue, served through the response cache.
	public := e.Group("/v1", middleware.CacheGET(config.LoadCacheConfig(), rdb))
	public.GET("/films", h.Catalog.ListFilms)
	public.GET("/films/:id", h.Catalog.GetFilm)
	public.GET("/films/:id/reviews", h.Catalog.ListFilmReviews)
	public.GET("/films/:id/sessions", h.Catalog.ListFilmSessions)
	public.GET("/sessions/:id", h.Catalog.GetSession)
	public.GET("/sessions/:id/tickets", h.Catalog.ListSessionTickets)
	public.GET("/halls/:id/plan", h.Catalog.GetHallPlan)

	// Authentication passthrough.
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	// Profile and booking, for any authenticated user.
	user := e.Group("/v1")
	user.Use(middleware.JWTAuth(cfg.JWTSecret))
	user.Use(middleware.RequireRole(model.RoleUser, model.RoleAdmin))
	user.GET("/me", h.Auth.Me)
	user.PUT("/me", h.Auth.UpdateMe)
	user.GET("/booking", h.Booking.GetState)
	user.POST("/booking/session", h.Booking.ChooseSession)
	user.POST("/booking/seats/:seatId", h.Booking.ToggleSeat)
	user.POST("/booking/reserve", h.Booking.Reserve)
	user.POST("/booking/pay", h.Booking.Pay)
	user.DELETE("/booking", h.Booking.Abandon)

	// Back-office, admins only.
	admin := e.Group("/v1/admin")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.GET("/halls", h.Admin.ListHalls)
	admin.POST("/halls", h.Admin.CreateHall)
	admin.PUT("/halls/:id", h.Admin.UpdateHall)
	admin.DELETE("/halls/:id", h.Admin.DeleteHall)
	admin.GET("/seat-categories", h.Admin.ListSeatCategories)
	admin.POST("/seat-categories", h.Admin.CreateSeatCategory)
	admin.PUT("/seat-categories/:id", h.Admin.UpdateSeatCategory)
	admin.DELETE("/seat-categories/:id", h.Admin.DeleteSeatCategory)
	admin.GET("/sessions", h.Admin.ListSessions)
	admin.POST("/sessions", h.Admin.CreateSession)
	admin.POST("/sessions/preview", h.Admin.PreviewSchedule)
	admin.PUT("/sessions/:id", h.Admin.UpdateSession)
	admin.DELETE("/sessions/:id", h.Admin.DeleteSession)
}
