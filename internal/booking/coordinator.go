package booking

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/cineseat/booking-gateway/internal/model"
)

// Stages of the booking workflow.  Failed transitions roll back to the
// previous stable stage instead of introducing a terminal error stage.
const (
	StageIdle            = "IDLE"
	StageSessionChosen   = "SESSION_CHOSEN"
	StageHallLoaded      = "HALL_LOADED"
	StageReserving       = "RESERVING"
	StagePurchaseCreated = "PURCHASE_CREATED"
	StagePaying          = "PAYING"
)

// API is the slice of the upstream client the coordinator depends on.
type API interface {
	GetHallPlan(ctx context.Context, hallID string) (model.HallPlan, error)
	ListTickets(ctx context.Context, sessionID string) ([]model.Ticket, error)
	ReserveTicket(ctx context.Context, token, ticketID string) error
	CreatePurchase(ctx context.Context, token string, ticketIDs []string) (model.Purchase, error)
	ProcessPayment(ctx context.Context, token string, purchaseID int64, cardNumber string) error
}

// State is a point-in-time copy of the coordinator handed to the HTTP
// layer.  Selection is always non-nil so clients see [] rather than
// null.
type State struct {
	Stage     string          `json:"stage"`
	Session   *model.Session  `json:"session,omitempty"`
	HallPlan  *model.HallPlan `json:"hallPlan,omitempty"`
	Tickets   []model.Ticket  `json:"tickets,omitempty"`
	Selection []int64         `json:"selection"`
	Purchase  *model.Purchase `json:"purchase,omitempty"`
}

// Coordinator drives one user's booking attempt.  All exported methods
// are safe for concurrent use: rapid re-clicks arrive as overlapping
// HTTP requests, and a monotonically increasing generation counter
// makes sure a stale hall load can never overwrite the seat map of the
// session chosen later.
type Coordinator struct {
	api API

	mu        sync.Mutex
	gen       uint64
	stage     string
	session   model.Session
	plan      *model.HallPlan
	tickets   []model.Ticket
	selection []int64
	purchase  *model.Purchase
}

// NewCoordinator constructs an idle coordinator over the given API.
func NewCoordinator(api API) *Coordinator {
	if api == nil {
		panic("nil API passed to NewCoordinator")
	}
	return &Coordinator{api: api, stage: StageIdle}
}

// ChooseSession switches the booking attempt to the given session.  Any
// prior selection and pending purchase are dropped, then the hall plan
// and ticket statuses are fetched.  If a newer ChooseSession call lands
// while the fetch is in flight, the fetched data is discarded and
// ErrSuperseded is returned; the caller simply serves the newer state.
func (co *Coordinator) ChooseSession(ctx context.Context, s model.Session) error {
	co.mu.Lock()
	co.gen++
	gen := co.gen
	co.session = s
	co.plan = nil
	co.tickets = nil
	co.selection = nil
	co.purchase = nil
	co.stage = StageSessionChosen
	co.mu.Unlock()

	plan, err := co.api.GetHallPlan(ctx, s.HallID)
	if err != nil {
		log.Printf("booking: hall plan load failed for session %s: %v", s.ID, err)
		return fmt.Errorf("%w: %v", ErrHallLoadFailed, err)
	}
	tickets, err := co.api.ListTickets(ctx, s.ID)
	if err != nil {
		log.Printf("booking: ticket load failed for session %s: %v", s.ID, err)
		return fmt.Errorf("%w: %v", ErrHallLoadFailed, err)
	}

	co.mu.Lock()
	defer co.mu.Unlock()
	if gen != co.gen {
		// A newer session choice superseded this fetch.
		return ErrSuperseded
	}
	co.plan = &plan
	co.tickets = tickets
	co.stage = StageHallLoaded
	return nil
}

// ToggleSeat adds the seat to the selection if absent and removes it if
// present.  Seats whose ticket is not AVAILABLE are ignored: clicking a
// sold seat is a no-op, not an error.  The selection slice is replaced,
// never mutated in place.
func (co *Coordinator) ToggleSeat(seatID int64) ([]int64, error) {
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.stage == StageIdle || co.stage == StageSessionChosen {
		return co.selectionCopy(), ErrNoSession
	}
	t, ok := co.ticketForSeat(seatID)
	if !ok || t.Status != model.TicketAvailable {
		return co.selectionCopy(), nil
	}

	next := make([]int64, 0, len(co.selection)+1)
	removed := false
	for _, id := range co.selection {
		if id == seatID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, seatID)
	}
	co.selection = next
	return co.selectionCopy(), nil
}

// Reserve reserves a ticket for every selected seat and, once all of
// them succeed, creates a purchase bundling the ticket ids.  Every
// reservation request of the attempt is issued even after one fails;
// any failure fails the whole attempt without creating a purchase, and
// tickets already reserved upstream are left for the server to
// reconcile.
func (co *Coordinator) Reserve(ctx context.Context, token string) (model.Purchase, error) {
	co.mu.Lock()
	if token == "" {
		co.mu.Unlock()
		return model.Purchase{}, ErrAuthRequired
	}
	if co.stage != StageHallLoaded {
		pending := co.purchase
		co.mu.Unlock()
		if pending != nil {
			// Re-clicking reserve while a purchase is pending returns it
			// instead of reserving the same seats twice.
			return *pending, nil
		}
		return model.Purchase{}, ErrNoSession
	}
	if len(co.selection) == 0 {
		co.mu.Unlock()
		return model.Purchase{}, ErrNoSeatsSelected
	}
	gen := co.gen
	ticketIDs := make([]string, 0, len(co.selection))
	for _, seatID := range co.selection {
		if t, ok := co.ticketForSeat(seatID); ok {
			ticketIDs = append(ticketIDs, t.ID)
		}
	}
	co.stage = StageReserving
	co.mu.Unlock()

	if len(ticketIDs) == 0 {
		co.rollback(gen, StageHallLoaded)
		return model.Purchase{}, ErrNoSeatsSelected
	}

	// Issue every reservation of the attempt and wait for all of them
	// to settle before deciding the outcome.
	var firstErr error
	for _, id := range ticketIDs {
		if err := co.api.ReserveTicket(ctx, token, id); err != nil {
			log.Printf("booking: reserve ticket %s failed: %v", id, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		co.rollback(gen, StageHallLoaded)
		return model.Purchase{}, fmt.Errorf("%w: %v", ErrReservationFailed, firstErr)
	}

	p, err := co.api.CreatePurchase(ctx, token, ticketIDs)
	if err != nil {
		log.Printf("booking: create purchase failed: %v", err)
		co.rollback(gen, StageHallLoaded)
		return model.Purchase{}, fmt.Errorf("%w: %v", ErrReservationFailed, err)
	}

	co.mu.Lock()
	defer co.mu.Unlock()
	if gen != co.gen {
		return model.Purchase{}, ErrSuperseded
	}
	co.purchase = &p
	co.stage = StagePurchaseCreated
	return p, nil
}

// Pay settles the pending purchase with the given card number.  On
// success the purchase and selection are cleared and ticket statuses
// are refreshed so seats now sold show as taken.  On failure the
// purchase is kept intact so the user can retry payment without
// re-reserving.
func (co *Coordinator) Pay(ctx context.Context, token, cardNumber string) error {
	co.mu.Lock()
	if token == "" {
		co.mu.Unlock()
		return ErrAuthRequired
	}
	if co.purchase == nil {
		co.mu.Unlock()
		return ErrNoPurchase
	}
	if cardNumber == "" {
		co.mu.Unlock()
		return ErrCardRequired
	}
	gen := co.gen
	purchaseID := co.purchase.ID
	sessionID := co.session.ID
	co.stage = StagePaying
	co.mu.Unlock()

	if err := co.api.ProcessPayment(ctx, token, purchaseID, cardNumber); err != nil {
		log.Printf("booking: payment for purchase %d failed: %v", purchaseID, err)
		co.rollback(gen, StagePurchaseCreated)
		return fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	// Refresh ticket statuses so the paid seats render as taken.  A
	// failed refresh is logged but does not fail the payment.
	tickets, err := co.api.ListTickets(ctx, sessionID)
	if err != nil {
		log.Printf("booking: ticket refresh after payment failed: %v", err)
		tickets = nil
	}

	co.mu.Lock()
	defer co.mu.Unlock()
	if gen != co.gen {
		return nil
	}
	co.purchase = nil
	co.selection = nil
	if tickets != nil {
		co.tickets = tickets
	}
	co.stage = StageHallLoaded
	return nil
}

// Abandon resets the coordinator to idle, dropping the session, the
// selection and any unpaid purchase.  Reserved tickets upstream are
// left for the server's expiry to reclaim.
func (co *Coordinator) Abandon() {
	co.mu.Lock()
	defer co.mu.Unlock()
	co.gen++
	co.session = model.Session{}
	co.plan = nil
	co.tickets = nil
	co.selection = nil
	co.purchase = nil
	co.stage = StageIdle
}

// Snapshot returns a copy of the coordinator state for rendering.
func (co *Coordinator) Snapshot() State {
	co.mu.Lock()
	defer co.mu.Unlock()
	st := State{
		Stage:     co.stage,
		Selection: co.selectionCopy(),
	}
	if co.stage != StageIdle {
		s := co.session
		st.Session = &s
	}
	if co.plan != nil {
		plan := *co.plan
		st.HallPlan = &plan
	}
	if co.tickets != nil {
		st.Tickets = append([]model.Ticket(nil), co.tickets...)
	}
	if co.purchase != nil {
		p := *co.purchase
		st.Purchase = &p
	}
	return st
}

// rollback returns the coordinator to a stable stage after a failed
// transition, unless a newer session choice already replaced the state.
func (co *Coordinator) rollback(gen uint64, stage string) {
	co.mu.Lock()
	defer co.mu.Unlock()
	if gen == co.gen {
		co.stage = stage
	}
}

// ticketForSeat resolves the ticket covering a hall-plan seat.  Seat
// ids are numeric in the plan but strings on tickets.
func (co *Coordinator) ticketForSeat(seatID int64) (model.Ticket, bool) {
	want := strconv.FormatInt(seatID, 10)
	for _, t := range co.tickets {
		if t.SeatID == want {
			return t, true
		}
	}
	return model.Ticket{}, false
}

func (co *Coordinator) selectionCopy() []int64 {
	out := make([]int64, len(co.selection))
	copy(out, co.selection)
	return out
}
