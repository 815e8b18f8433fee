package booking

import "napoleon_resorts/internal/domain"

// Selection is the single room a guest has tentatively chosen. The zero value holds nothing.
type Selection struct {
	room *domain.Room
}

// Select replaces any prior choice.
func (s *Selection) Select(r domain.Room) { s.room = &r }

func (s *Selection) Current() (domain.Room, bool) {
	if s.room == nil {
		return domain.Room{}, false
	}
	return *s.room, true
}

func (s *Selection) IsSelected(roomID string) bool {
	return s.room != nil && s.room.ID == roomID
}
