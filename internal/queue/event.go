// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// PurchaseCompletedEvent is published when a purchase is successfully
// paid.  It carries enough information for downstream consumers to log
// or notify without calling the upstream API again.
type PurchaseCompletedEvent struct {
	PurchaseID      int64    `json:"purchase_id"`
	UserID          string   `json:"user_id"`
	SessionID       string   `json:"session_id"`
	TicketIDs       []string `json:"ticket_ids"`
	TotalPriceCents int64    `json:"total_price_cents"`
	CompletedAt     string   `json:"completed_at"`
}
