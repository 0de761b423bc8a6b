package model

// Ticket statuses as reported by the remote API.  Status transitions
// happen server-side; the gateway only requests them.
const (
	TicketAvailable = "AVAILABLE"
	TicketReserved  = "RESERVED"
	TicketSold      = "SOLD"
)

// Ticket is the authoritative reservation unit for one seat within one
// session.  SeatID is a string on the wire even though hall-plan seats
// carry numeric identifiers; callers resolve between the two.
type Ticket struct {
	ID         string `json:"id"`
	SeatID     string `json:"seatId"`
	CategoryID string `json:"categoryId"`
	Status     string `json:"status"`
	PriceCents int64  `json:"priceCents"`
}
