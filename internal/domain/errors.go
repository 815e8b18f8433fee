package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	ErrMissingDestination = errors.New("destination is required")
	ErrMissingCheckIn     = errors.New("check-in date is required")
	ErrMissingCheckOut    = errors.New("check-out date is required")
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrStayTooLong        = errors.New("stay is too long")
	ErrCheckInInPast      = errors.New("check-in date is in the past")
	ErrInvalidGuests      = errors.New("guest count out of range")
	ErrUnknownDestination = errors.New("unknown destination")
	ErrRoomTooSmall       = errors.New("room does not fit the guest count")
)

// IsValidation reports whether err is a caller mistake rather than a lookup or storage failure.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrMissingDestination, ErrMissingCheckIn, ErrMissingCheckOut, ErrInvalidDateRange, ErrStayTooLong,
		ErrCheckInInPast, ErrInvalidGuests, ErrUnknownDestination, ErrRoomTooSmall,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
