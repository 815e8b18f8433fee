package booking

import (
	"fmt"
	"time"

	"napoleon_resorts/internal/domain"
)

// ValidateStay checks that q is complete enough to search or quote on the day of now.
// Check-out must fall strictly after check-in and within MaxStayNights of it. Check-in
// may not be before today.
func ValidateStay(q domain.StayQuery, now time.Time) error {
	if q.Destination == "" {
		return domain.ErrMissingDestination
	}
	if q.CheckIn == nil {
		return domain.ErrMissingCheckIn
	}
	if q.CheckOut == nil {
		return domain.ErrMissingCheckOut
	}
	if q.Guests < domain.MinGuestCount || q.Guests > domain.MaxGuestCount {
		return fmt.Errorf("%w: %d (allowed %d-%d)", domain.ErrInvalidGuests,
			q.Guests, domain.MinGuestCount, domain.MaxGuestCount)
	}
	if !q.CheckOut.After(*q.CheckIn) {
		return domain.ErrInvalidDateRange
	}
	if n := ComputeNights(q.CheckIn, q.CheckOut); n > domain.MaxStayNights {
		return fmt.Errorf("%w: %d nights (at most %d)", domain.ErrStayTooLong, n, domain.MaxStayNights)
	}
	loc := q.CheckIn.Location()
	if dateOf(*q.CheckIn, loc).Before(dateOf(now, loc)) {
		return domain.ErrCheckInInPast
	}
	return nil
}
