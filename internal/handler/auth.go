package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cineseat/booking-gateway/internal/remote"
)

// AuthHandler relays authentication and profile operations to the
// upstream API.  The gateway issues no tokens of its own; it forwards
// credentials and hands the upstream's access token back to the
// browser.
type AuthHandler struct {
	API *remote.Client
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(api *remote.Client) *AuthHandler {
	if api == nil {
		panic("nil client passed to NewAuthHandler")
	}
	return &AuthHandler{API: api}
}

// Register handles POST /v1/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req remote.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}
	tok, err := h.API.Register(c.Request().Context(), req)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusCreated, tok)
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req remote.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}
	tok, err := h.API.Login(c.Request().Context(), req)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, tok)
}

// Me handles GET /v1/me.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.API.CurrentUser(c.Request().Context(), bearerToken(c))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /v1/me.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	var upd remote.ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	user, err := h.API.UpdateCurrentUser(c.Request().Context(), bearerToken(c), upd)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
