package booking

import "time"

const secondsPerDay = 24 * 60 * 60

// ComputeNights returns the whole nights between two dates: the ceiling of the absolute
// difference in days. A missing date yields 0. Inverted ranges are not rejected here;
// ValidateStay is the guard for booking purposes.
//
// The difference is taken in Unix seconds so that spans longer than a time.Duration
// can hold (about 292 years) still count correctly.
func ComputeNights(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	a, b := *checkIn, *checkOut
	if b.Before(a) {
		a, b = b, a
	}
	secs := b.Unix() - a.Unix()
	if b.Nanosecond() < a.Nanosecond() {
		secs--
	}
	n := secs / secondsPerDay
	if secs%secondsPerDay != 0 || b.Nanosecond() != a.Nanosecond() {
		n++
	}
	return int(n)
}

// dateOf truncates t to midnight in loc.
func dateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
