package domain

import "time"

const (
	DefaultGuests = 2
	MinGuestCount = 1
	MaxGuestCount = 6

	// MaxStayNights bounds a single reservation.
	MaxStayNights = 365
)

// StayQuery holds the in-progress search criteria. Destination, CheckIn and CheckOut are
// optional until a search is run; Guests defaults to DefaultGuests.
type StayQuery struct {
	Destination string     `json:"destination,omitempty"`
	CheckIn     *time.Time `json:"check_in,omitempty"`
	CheckOut    *time.Time `json:"check_out,omitempty"`
	Guests      int        `json:"guests"`
}

func NewStayQuery() StayQuery { return StayQuery{Guests: DefaultGuests} }

type PricingResult struct {
	Nights    int   `json:"nights"`
	RoomTotal Cents `json:"room_total_cents"`
	Taxes     Cents `json:"taxes_cents"`
	Fees      Cents `json:"fees_cents"`
	Total     Cents `json:"total_cents"`
}

type PricedRoom struct {
	Room    Room          `json:"room"`
	Pricing PricingResult `json:"pricing"`
}

// SearchResult is what a performed search returns. Rooms is never nil once Searched is set,
// so an empty result stays distinguishable from "no search yet".
type SearchResult struct {
	Query    StayQuery    `json:"query"`
	Location Location     `json:"location"`
	Nights   int          `json:"nights"`
	Searched bool         `json:"searched"`
	Rooms    []PricedRoom `json:"rooms"`
}

type BookingSummary struct {
	QuoteID  string        `json:"quote_id"`
	Room     Room          `json:"room"`
	Location Location      `json:"location"`
	CheckIn  time.Time     `json:"check_in"`
	CheckOut time.Time     `json:"check_out"`
	Guests   int           `json:"guests"`
	Pricing  PricingResult `json:"pricing"`
}
