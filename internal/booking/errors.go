// Package booking sequences the customer booking workflow: choose a
// session, pick seats, reserve the matching tickets, create a purchase
// and pay for it.  The upstream API owns every state transition; the
// coordinator only requests them and keeps the per-user view coherent.
package booking

import "errors"

// Validation errors, reported before any network call is attempted.
var (
	// ErrAuthRequired is returned when an operation needs a credential
	// and none was supplied.
	ErrAuthRequired = errors.New("authenticate first")
	// ErrNoSeatsSelected is returned by Reserve when the selection set
	// is empty.
	ErrNoSeatsSelected = errors.New("no seats selected")
	// ErrNoSession is returned when seats are toggled or reserved
	// before a session was chosen and its hall loaded.
	ErrNoSession = errors.New("no session chosen")
	// ErrNoPurchase is returned by Pay when there is nothing to pay for.
	ErrNoPurchase = errors.New("no purchase to pay")
	// ErrCardRequired is returned by Pay when the card number is empty.
	ErrCardRequired = errors.New("card number required")
)

// Failure errors for network-touching transitions.  The coordinator
// wraps the underlying cause, logs it, and rolls the stage back to the
// last stable step; retry is a manual user action.
var (
	// ErrHallLoadFailed is returned when the hall plan or ticket
	// statuses could not be fetched for the chosen session.
	ErrHallLoadFailed = errors.New("hall load error")
	// ErrReservationFailed is returned when any reservation request of
	// the attempt fails, or when the purchase could not be created.
	ErrReservationFailed = errors.New("reservation error")
	// ErrPaymentFailed is returned when the payment request fails.  The
	// purchase is kept so payment can be retried without re-reserving.
	ErrPaymentFailed = errors.New("payment error")
	// ErrSuperseded is returned when the result of an operation was
	// discarded because a newer session choice replaced it mid-flight.
	ErrSuperseded = errors.New("superseded by a newer session choice")
)
