package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health lets load balancers verify the gateway is up.  It does not
// probe the upstream API: a degraded upstream is surfaced per request,
// not by taking the gateway out of rotation.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
