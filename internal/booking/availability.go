package booking

import "napoleon_resorts/internal/domain"

// FilterRoomsByCapacity keeps the rooms that sleep at least guests, in their original order.
// The result is never nil.
func FilterRoomsByCapacity(rooms []domain.Room, guests int) []domain.Room {
	out := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.MaxGuests >= guests {
			out = append(out, r)
		}
	}
	return out
}
