package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cineseat/booking-gateway/internal/model"
)

// ListSeatCategories handles GET /v1/admin/seat-categories.
func (h *AdminHandler) ListSeatCategories(c echo.Context) error {
	page, size := pageParams(c)
	cats, err := h.API.ListSeatCategories(c.Request().Context(), bearerToken(c), page, size)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": cats})
}

// CreateSeatCategory handles POST /v1/admin/seat-categories.
func (h *AdminHandler) CreateSeatCategory(c echo.Context) error {
	cat, err := bindSeatCategory(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	created, err := h.API.CreateSeatCategory(c.Request().Context(), bearerToken(c), cat)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateSeatCategory handles PUT /v1/admin/seat-categories/:id.
func (h *AdminHandler) UpdateSeatCategory(c echo.Context) error {
	cat, err := bindSeatCategory(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	cat.ID = c.Param("id")
	updated, err := h.API.UpdateSeatCategory(c.Request().Context(), bearerToken(c), cat)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteSeatCategory handles DELETE /v1/admin/seat-categories/:id.
func (h *AdminHandler) DeleteSeatCategory(c echo.Context) error {
	if err := h.API.DeleteSeatCategory(c.Request().Context(), bearerToken(c), c.Param("id")); err != nil {
		return upstreamError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// bindSeatCategory decodes and validates a seat category payload.
func bindSeatCategory(c echo.Context) (model.SeatCategory, error) {
	var cat model.SeatCategory
	if err := c.Bind(&cat); err != nil {
		return cat, errors.New("invalid request body")
	}
	if cat.Name == "" {
		return cat, errors.New("name is required")
	}
	if cat.PriceCents < 0 {
		return cat, errors.New("priceCents must not be negative")
	}
	return cat, nil
}
