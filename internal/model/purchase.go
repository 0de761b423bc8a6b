package model

// Purchase bundles one or more reserved tickets awaiting payment.  It is
// created by the remote API once all reservations of a booking attempt
// succeed and is owned by the booking coordinator until payment resolves
// or the attempt is abandoned.
type Purchase struct {
	ID         int64    `json:"id"`
	TicketIDs  []string `json:"ticketIds"`
	TotalPrice int64    `json:"totalPrice"`
	Status     string   `json:"status"`
}
