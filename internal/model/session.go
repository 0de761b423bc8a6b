package model

// Session represents a scheduled screening of a film in a particular
// hall.  StartAt is kept as the raw datetime-local string used on the
// wire ("2006-01-02T15:04") because the remote API accepts it verbatim
// and the recurrence calculator parses it itself.
//
// Fields:
//  ID             – remote identifier (empty when creating).
//  FilmID         – film being screened.
//  HallID         – hall the screening takes place in.
//  StartAt        – start of the screening.
//  PeriodicConfig – optional recurrence attached to the session template.
type Session struct {
	ID             string          `json:"id"`
	FilmID         string          `json:"filmId"`
	HallID         string          `json:"hallId"`
	StartAt        string          `json:"startAt"`
	PeriodicConfig *PeriodicConfig `json:"periodicConfig,omitempty"`
}

// PeriodicConfig is the recurrence configuration submitted together with
// a session.  Period uses the remote API's enum values EVERY_DAY and
// EVERY_WEEK; PeriodGenerationEndsAt is the last date (inclusive) on
// which an occurrence may be generated.
type PeriodicConfig struct {
	Period                 string `json:"period"`
	PeriodGenerationEndsAt string `json:"periodGenerationEndsAt"`
}
