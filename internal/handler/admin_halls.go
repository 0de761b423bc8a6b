package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cineseat/booking-gateway/internal/model"
	"github.com/cineseat/booking-gateway/internal/remote"
)

// AdminHandler relays back-office management of halls, seat categories
// and sessions to the upstream API with the admin's own credential.
// Route-level middleware enforces the ADMIN role before any of these
// run.
type AdminHandler struct {
	API *remote.Client
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(api *remote.Client) *AdminHandler {
	if api == nil {
		panic("nil client passed to NewAdminHandler")
	}
	return &AdminHandler{API: api}
}

// ListHalls handles GET /v1/admin/halls.
func (h *AdminHandler) ListHalls(c echo.Context) error {
	halls, err := h.API.ListHalls(c.Request().Context(), bearerToken(c))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": halls})
}

// CreateHall handles POST /v1/admin/halls.
func (h *AdminHandler) CreateHall(c echo.Context) error {
	var hall model.Hall
	if err := c.Bind(&hall); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if hall.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	created, err := h.API.CreateHall(c.Request().Context(), bearerToken(c), hall)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateHall handles PUT /v1/admin/halls/:id.
func (h *AdminHandler) UpdateHall(c echo.Context) error {
	var hall model.Hall
	if err := c.Bind(&hall); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	hall.ID = c.Param("id")
	if hall.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	updated, err := h.API.UpdateHall(c.Request().Context(), bearerToken(c), hall)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteHall handles DELETE /v1/admin/halls/:id.
func (h *AdminHandler) DeleteHall(c echo.Context) error {
	if err := h.API.DeleteHall(c.Request().Context(), bearerToken(c), c.Param("id")); err != nil {
		return upstreamError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
