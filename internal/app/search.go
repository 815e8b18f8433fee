package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"napoleon_resorts/internal/adapters/observability"
	"napoleon_resorts/internal/booking"
	"napoleon_resorts/internal/domain"
)

// validate runs the stay checks and resolves the destination.
func (s *QueryService) validate(ctx context.Context, q domain.StayQuery, now time.Time) (domain.Location, error) {
	if err := booking.ValidateStay(q, now); err != nil {
		return domain.Location{}, err
	}
	return s.location(ctx, q.Destination)
}

// SearchRooms filters the room catalog by guest count and prices every match for the stay.
// Validation failures return before any room is listed.
func (s *QueryService) SearchRooms(ctx context.Context, q domain.StayQuery, now time.Time) (domain.SearchResult, error) {
	loc, err := s.validate(ctx, q, now)
	if err != nil {
		observability.ObserveSearch(Outcome(err), 0)
		return domain.SearchResult{}, err
	}
	all, err := s.rooms(ctx)
	if err != nil {
		observability.ObserveSearch("error", 0)
		return domain.SearchResult{}, err
	}

	nights := booking.ComputeNights(q.CheckIn, q.CheckOut)
	matches := booking.FilterRoomsByCapacity(all, q.Guests)
	res := domain.SearchResult{
		Query:    q,
		Location: loc,
		Nights:   nights,
		Searched: true,
		Rooms:    booking.PriceRooms(matches, nights),
	}

	if len(res.Rooms) == 0 {
		observability.ObserveSearch("empty", 0)
	} else {
		observability.ObserveSearch("ok", len(res.Rooms))
	}
	log.Debug().
		Str("destination", q.Destination).
		Int("guests", q.Guests).
		Int("nights", nights).
		Int("results", len(res.Rooms)).
		Msg("room search")
	return res, nil
}

// QuoteRoom builds the booking summary for one room. Nothing is persisted.
func (s *QueryService) QuoteRoom(ctx context.Context, roomID string, q domain.StayQuery, now time.Time) (domain.BookingSummary, error) {
	loc, err := s.validate(ctx, q, now)
	if err != nil {
		observability.ObserveQuote(Outcome(err))
		return domain.BookingSummary{}, err
	}
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		observability.ObserveQuote(Outcome(err))
		return domain.BookingSummary{}, err
	}
	if room.MaxGuests < q.Guests {
		observability.ObserveQuote("invalid")
		return domain.BookingSummary{}, fmt.Errorf("%w: %s sleeps %d, asked for %d",
			domain.ErrRoomTooSmall, room.Name, room.MaxGuests, q.Guests)
	}

	observability.ObserveQuote("ok")
	return domain.BookingSummary{
		QuoteID:  uuid.NewString(),
		Room:     room,
		Location: loc,
		CheckIn:  *q.CheckIn,
		CheckOut: *q.CheckOut,
		Guests:   q.Guests,
		Pricing:  booking.PriceRoom(room, booking.ComputeNights(q.CheckIn, q.CheckOut)),
	}, nil
}

// findRoom looks in the cached list first so a quote after a search costs no extra read.
func (s *QueryService) findRoom(ctx context.Context, id string) (domain.Room, error) {
	if s.cache != nil {
		var rooms []domain.Room
		if ok, _ := s.cache.Get(ctx, KeyRooms, &rooms); ok {
			for _, r := range rooms {
				if r.ID == id {
					return r, nil
				}
			}
		}
	}
	return s.repo.GetRoom(ctx, id)
}

// Outcome names how a search or quote ended, as used in metrics and access logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case domain.IsValidation(err):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
