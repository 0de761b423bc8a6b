package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cineseat/booking-gateway/internal/model"
)

// ListTickets fetches the current ticket statuses for a session.  The
// result is a snapshot; statuses change server-side as other customers
// book.
func (c *Client) ListTickets(ctx context.Context, sessionID string) ([]model.Ticket, error) {
	var tickets []model.Ticket
	path := "/sessions/" + url.PathEscape(sessionID) + "/tickets"
	if err := c.do(ctx, http.MethodGet, path, nil, "", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// ReserveTicket requests the AVAILABLE → RESERVED transition for a
// single ticket.  The upstream API is the authority on whether the
// transition is still possible.
func (c *Client) ReserveTicket(ctx context.Context, token, ticketID string) error {
	path := "/tickets/" + url.PathEscape(ticketID) + "/reserve"
	return c.do(ctx, http.MethodPost, path, nil, token, struct{}{}, nil)
}

// CreatePurchase bundles reserved tickets into a purchase awaiting
// payment.
func (c *Client) CreatePurchase(ctx context.Context, token string, ticketIDs []string) (model.Purchase, error) {
	in := struct {
		TicketIDs []string `json:"ticketIds"`
	}{TicketIDs: ticketIDs}
	var p model.Purchase
	err := c.do(ctx, http.MethodPost, "/purchases", nil, token, in, &p)
	return p, err
}

// ProcessPayment pays for a purchase with the given card number.
func (c *Client) ProcessPayment(ctx context.Context, token string, purchaseID int64, cardNumber string) error {
	in := struct {
		PurchaseID int64  `json:"purchaseId"`
		CardNumber string `json:"cardNumber"`
	}{PurchaseID: purchaseID, CardNumber: cardNumber}
	return c.do(ctx, http.MethodPost, "/payments/process", nil, token, in, nil)
}
