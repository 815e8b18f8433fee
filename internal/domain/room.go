package domain

type Room struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"` // Suite|Deluxe|Standard
	SizeSqFt      int      `json:"size_sqft"`
	MaxGuests     int      `json:"max_guests"`
	Price         Cents    `json:"price_cents"` // per night
	OriginalPrice *Cents   `json:"original_price_cents,omitempty"`
	Amenities     []string `json:"amenities"`
	Features      []string `json:"features"`
	Description   string   `json:"description"`
	Availability  int      `json:"availability"` // units left
}

// Savings is the per-night discount against OriginalPrice; zero when the room is not discounted.
func (r Room) Savings() Cents {
	if r.OriginalPrice == nil || *r.OriginalPrice <= r.Price {
		return 0
	}
	return *r.OriginalPrice - r.Price
}
