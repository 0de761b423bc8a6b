package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cineseat/booking-gateway/internal/booking"
	"github.com/cineseat/booking-gateway/internal/handler"
	"github.com/cineseat/booking-gateway/internal/middleware"
	"github.com/cineseat/booking-gateway/internal/remote"
)

// upstreamStub serves the minimal remote API surface one booking attempt
// touches: a session, its hall plan and tickets, and the reserve,
// purchase and payment endpoints.
func upstreamStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/sessions/s-1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"s-1","filmId":"f-1","hallId":"h-1","startAt":"2026-01-01T10:00"}`))
	})
	mux.HandleFunc("/halls/h-1/plan", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hallId":"h-1","rows":1,"seats":[` +
			`{"id":1,"row":1,"number":1,"category":"Standard","price":450,"isTaken":false},` +
			`{"id":2,"row":1,"number":2,"category":"Standard","price":450,"isTaken":false}],` +
			`"categories":[{"id":"c-1","name":"Standard","priceCents":45000}]}`))
	})
	mux.HandleFunc("/sessions/s-1/tickets", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[` +
			`{"id":"t-1","seatId":"1","categoryId":"c-1","status":"AVAILABLE","priceCents":45000},` +
			`{"id":"t-2","seatId":"2","categoryId":"c-1","status":"AVAILABLE","priceCents":45000}]`))
	})
	mux.HandleFunc("/tickets/t-1/reserve", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/purchases", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":77,"ticketIds":["t-1"],"totalPrice":45000,"status":"PENDING"}`))
	})
	mux.HandleFunc("/payments/process", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return httptest.NewServer(mux)
}

// authedContext builds an echo context carrying the values the JWT
// middleware would have stored.
func authedContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, "u-1")
	c.Set(middleware.CtxRole, "USER")
	c.Set(middleware.CtxToken, "tok")
	return c, rec
}

func TestBookingFlowThroughHandlers(t *testing.T) {
	srv := upstreamStub(t)
	defer srv.Close()

	api := remote.NewClient(srv.URL, time.Second)
	h := handler.NewBookingHandler(booking.NewStore(api), api)
	e := echo.New()

	// Choose the session; the snapshot must come back with the hall
	// plan loaded.
	c, rec := authedContext(e, http.MethodPost, "/v1/booking/session", `{"sessionId":"s-1"}`)
	require.NoError(t, h.ChooseSession(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var state struct {
		Stage     string  `json:"stage"`
		Selection []int64 `json:"selection"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, booking.StageHallLoaded, state.Stage)

	// Pick seat 1.
	c, rec = authedContext(e, http.MethodPost, "/v1/booking/seats/1", "")
	c.SetParamNames("seatId")
	c.SetParamValues("1")
	require.NoError(t, h.ToggleSeat(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var sel struct {
		Selection []int64 `json:"selection"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sel))
	assert.Equal(t, []int64{1}, sel.Selection)

	// Reserve creates the purchase.
	c, rec = authedContext(e, http.MethodPost, "/v1/booking/reserve", "")
	require.NoError(t, h.Reserve(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var purchase struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &purchase))
	assert.Equal(t, int64(77), purchase.ID)

	// Pay completes the attempt and the snapshot returns to seat
	// selection with the purchase cleared.
	c, rec = authedContext(e, http.MethodPost, "/v1/booking/pay", `{"cardNumber":"4242424242424242"}`)
	require.NoError(t, h.Pay(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var after struct {
		Stage    string           `json:"stage"`
		Purchase *json.RawMessage `json:"purchase"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.Equal(t, booking.StageHallLoaded, after.Stage)
	assert.Nil(t, after.Purchase)
}

func TestReserveWithoutSessionIsBadRequest(t *testing.T) {
	srv := upstreamStub(t)
	defer srv.Close()

	api := remote.NewClient(srv.URL, time.Second)
	h := handler.NewBookingHandler(booking.NewStore(api), api)
	e := echo.New()

	c, rec := authedContext(e, http.MethodPost, "/v1/booking/reserve", "")
	require.NoError(t, h.Reserve(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingRoutesRejectMissingIdentity(t *testing.T) {
	srv := upstreamStub(t)
	defer srv.Close()

	api := remote.NewClient(srv.URL, time.Second)
	h := handler.NewBookingHandler(booking.NewStore(api), api)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/booking", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetState(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
