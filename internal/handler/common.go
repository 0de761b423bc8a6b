// Package handler exposes the gateway's HTTP handlers: public catalogue
// browsing, authentication passthrough, the booking workflow and the
// admin back-office.  Handlers hold no business rules of their own;
// they validate input, call the upstream API or the booking
// coordinator, and shape responses.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cineseat/booking-gateway/internal/middleware"
	"github.com/cineseat/booking-gateway/internal/remote"
)

// Defaults mirroring the front-end's pagination constants.
const (
	defaultPage = 0
	defaultSize = 100
)

// bearerToken returns the raw access token stored by the JWT
// middleware, or "" on unauthenticated routes.
func bearerToken(c echo.Context) string {
	if v, ok := c.Get(middleware.CtxToken).(string); ok {
		return v
	}
	return ""
}

// currentUserID returns the JWT subject as a string.  The claim may be
// numeric depending on the upstream issuer.
func currentUserID(c echo.Context) (string, error) {
	switch v := c.Get(middleware.CtxUserID).(type) {
	case string:
		if v != "" {
			return v, nil
		}
	case float64:
		return strconv.FormatInt(int64(v), 10), nil
	}
	return "", errors.New("missing user identity")
}

// pageParams reads ?page and ?size with the front-end's defaults.
func pageParams(c echo.Context) (int, int) {
	page, size := defaultPage, defaultSize
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v >= 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil && v > 0 {
		size = v
	}
	return page, size
}

// upstreamError turns a failed upstream call into a response: API
// rejections keep their status, transport failures become 502.  The
// cause is logged either way; clients only see a uniform message.
func upstreamError(c echo.Context, err error) error {
	log.Printf("handler: upstream call failed: %v", err)
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.Status, echo.Map{"error": "upstream error"})
	}
	return c.JSON(http.StatusBadGateway, echo.Map{"error": "upstream unavailable"})
}
