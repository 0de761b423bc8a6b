package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cineseat/booking-gateway/internal/remote"
)

// CatalogHandler serves the unauthenticated browsing surface: films,
// reviews, sessions, ticket availability and hall layouts.  Responses
// are straight relays of upstream data, which makes them safe to cache.
type CatalogHandler struct {
	API *remote.Client
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(api *remote.Client) *CatalogHandler {
	if api == nil {
		panic("nil client passed to NewCatalogHandler")
	}
	return &CatalogHandler{API: api}
}

// ListFilms handles GET /v1/films.
func (h *CatalogHandler) ListFilms(c echo.Context) error {
	page, size := pageParams(c)
	films, err := h.API.ListFilms(c.Request().Context(), page, size)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": films})
}

// GetFilm handles GET /v1/films/:id.
func (h *CatalogHandler) GetFilm(c echo.Context) error {
	film, err := h.API.GetFilm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, film)
}

// ListFilmReviews handles GET /v1/films/:id/reviews.
func (h *CatalogHandler) ListFilmReviews(c echo.Context) error {
	page, size := pageParams(c)
	reviews, err := h.API.ListReviews(c.Request().Context(), c.Param("id"), page, size)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": reviews})
}

// ListFilmSessions handles GET /v1/films/:id/sessions.
func (h *CatalogHandler) ListFilmSessions(c echo.Context) error {
	page, size := pageParams(c)
	sessions, err := h.API.ListSessions(c.Request().Context(), c.Param("id"), page, size)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": sessions})
}

// GetSession handles GET /v1/sessions/:id.
func (h *CatalogHandler) GetSession(c echo.Context) error {
	session, err := h.API.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// ListSessionTickets handles GET /v1/sessions/:id/tickets.  Guests can
// see availability before logging in to book.
func (h *CatalogHandler) ListSessionTickets(c echo.Context) error {
	tickets, err := h.API.ListTickets(c.Request().Context(), c.Param("id"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": tickets})
}

// GetHallPlan handles GET /v1/halls/:id/plan.
func (h *CatalogHandler) GetHallPlan(c echo.Context) error {
	plan, err := h.API.GetHallPlan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}
