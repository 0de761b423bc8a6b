package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cineseat/booking-gateway/internal/booking"
	"github.com/cineseat/booking-gateway/internal/queue"
	"github.com/cineseat/booking-gateway/internal/remote"
	queue_publisher "github.com/cineseat/booking-gateway/internal/service"
)

// BookingHandler drives a user's booking attempt through their
// coordinator.  Every route requires an authenticated user; the
// coordinator re-checks the credential itself so "authenticate first"
// is reported even if middleware wiring ever changes.
type BookingHandler struct {
	Store *booking.Store
	API   *remote.Client
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(store *booking.Store, api *remote.Client) *BookingHandler {
	if store == nil || api == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Store: store, API: api}
}

// GetState handles GET /v1/booking and returns the current coordinator
// snapshot for rendering.
func (h *BookingHandler) GetState(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Store.Get(userID).Snapshot())
}

// ChooseSession handles POST /v1/booking/session.  The body carries the
// session id; the session is resolved upstream, then the hall plan and
// ticket statuses are loaded.  A request superseded by a newer choice
// simply returns the newer state.
func (h *BookingHandler) ChooseSession(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.Bind(&body); err != nil || body.SessionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sessionId is required"})
	}

	session, err := h.API.GetSession(c.Request().Context(), body.SessionID)
	if err != nil {
		return upstreamError(c, err)
	}

	coord := h.Store.Get(userID)
	if err := coord.ChooseSession(c.Request().Context(), session); err != nil && !errors.Is(err, booking.ErrSuperseded) {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, coord.Snapshot())
}

// ToggleSeat handles POST /v1/booking/seats/:seatId.  Toggling a seat
// that is not available is a no-op, so the response is always the
// resulting selection.
func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	seatID, err := strconv.ParseInt(c.Param("seatId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	selection, err := h.Store.Get(userID).ToggleSeat(seatID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"selection": selection})
}

// Reserve handles POST /v1/booking/reserve.  On success the created
// purchase is returned and payment becomes available.
func (h *BookingHandler) Reserve(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	purchase, err := h.Store.Get(userID).Reserve(c.Request().Context(), bearerToken(c))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusCreated, purchase)
}

// Pay handles POST /v1/booking/pay.  The body carries the card number.
// On success a purchase.completed event is published for downstream
// consumers; publishing failures never fail the payment.
func (h *BookingHandler) Pay(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		CardNumber string `json:"cardNumber"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	coord := h.Store.Get(userID)
	before := coord.Snapshot()
	if err := coord.Pay(c.Request().Context(), bearerToken(c), body.CardNumber); err != nil {
		return bookingError(c, err)
	}

	if before.Purchase != nil {
		ev := queue.PurchaseCompletedEvent{
			PurchaseID:      before.Purchase.ID,
			UserID:          userID,
			TicketIDs:       before.Purchase.TicketIDs,
			TotalPriceCents: before.Purchase.TotalPrice,
			CompletedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		if before.Session != nil {
			ev.SessionID = before.Session.ID
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = queue_publisher.PublishPurchaseCompleted(ctx, ev)
		}()
	}
	return c.JSON(http.StatusOK, coord.Snapshot())
}

// Abandon handles DELETE /v1/booking and resets the user's coordinator.
func (h *BookingHandler) Abandon(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	h.Store.Get(userID).Abandon()
	return c.NoContent(http.StatusNoContent)
}

// bookingError maps coordinator errors onto HTTP responses.  The three
// user-facing failure messages are stable: "authenticate first",
// "reservation error" and "payment error".
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrAuthRequired):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": booking.ErrAuthRequired.Error()})
	case errors.Is(err, booking.ErrNoSeatsSelected),
		errors.Is(err, booking.ErrNoSession),
		errors.Is(err, booking.ErrNoPurchase),
		errors.Is(err, booking.ErrCardRequired):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrReservationFailed):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": booking.ErrReservationFailed.Error()})
	case errors.Is(err, booking.ErrPaymentFailed):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": booking.ErrPaymentFailed.Error()})
	case errors.Is(err, booking.ErrHallLoadFailed):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": booking.ErrHallLoadFailed.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
