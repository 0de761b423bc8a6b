package model

// Hall is a screening room managed through the admin back-office.
type Hall struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Seat describes a single physical seat within a hall plan.  Seats are
// an immutable snapshot fetched per hall; the gateway never owns them
// beyond display and selection.
//
// Fields:
//  ID       – seat identifier within the hall plan.
//  Row      – row number, starting at 1.
//  Number   – seat number within the row.
//  Category – category label such as "VIP" or "Standard".
//  Price    – display price for the seat.
//  IsTaken  – whether the seat is already sold or reserved.
type Seat struct {
	ID       int64   `json:"id"`
	Row      int     `json:"row"`
	Number   int     `json:"number"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	IsTaken  bool    `json:"isTaken"`
}

// SeatCategory is a pricing tier for seats, managed through the admin
// back-office.
type SeatCategory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

// HallPlan is the full seating layout of a hall together with the
// categories referenced by its seats.
type HallPlan struct {
	HallID     string         `json:"hallId"`
	Rows       int            `json:"rows"`
	Seats      []Seat         `json:"seats"`
	Categories []SeatCategory `json:"categories"`
}
