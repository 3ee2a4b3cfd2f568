/**
 * @description
 * Output data model of the event reconciliation engine.
 * All values are derived fresh per reconciliation run and never mutated
 * afterwards; the natural keys are event_ticker and ticker.
 */

package reconcile

import "time"

// UnknownEvent is the bucket key for contracts arriving without an event
// ticker. Explicit fallback behavior, not an error.
const UnknownEvent = "UNKNOWN_EVENT"

// Contract is a normalized market contract: prices converted from cents to
// probabilities, close time parsed. Pointers distinguish absent from zero.
type Contract struct {
	Ticker       string     `json:"ticker"`
	EventTicker  string     `json:"event_ticker"`
	SeriesTicker string     `json:"series_ticker"`
	MarketType   string     `json:"market_type"`
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle"`
	CloseTime    string     `json:"close_time"`
	CloseDT      *time.Time `json:"close_dt"`
	YesBid       *float64   `json:"yes_bid"`
	YesAsk       *float64   `json:"yes_ask"`
	OpenInterest int64      `json:"open_interest"`
	Volume24h    int64      `json:"volume_24h"`
}

// WinnerPrimary is the single canonical winner quote for an event. The NO
// side is never observed; it is always the complement of whichever side
// supplied the tightest known value.
type WinnerPrimary struct {
	Label       string   `json:"label"`
	SubjectTeam string   `json:"subject_team"`
	YesBid      *float64 `json:"yes_bid"`
	YesAsk      *float64 `json:"yes_ask"`
	NoBid       *float64 `json:"no_bid"`
	NoAsk       *float64 `json:"no_ask"`
	Ticker      string   `json:"ticker"`
}

// EventRecord is one reconciled game: every contract grouped under one event
// ticker, with resolved team identity, a single primary winner quote, and
// event-level aggregates.
type EventRecord struct {
	EventTicker     string        `json:"event_ticker"`
	PrettyEvent     string        `json:"pretty_event"`
	AwayTeam        string        `json:"away_team"`
	HomeTeam        string        `json:"home_team"`
	CloseDT         *time.Time    `json:"close_dt"`
	OpenInterestSum int64         `json:"open_interest_sum"`
	Volume24hSum    int64         `json:"volume_24h_sum"`
	WinnerPrimary   WinnerPrimary `json:"winner_primary"`
	AllContracts    []Contract    `json:"all_contracts"`
}
