// Package catalog holds the reference data the resort ships with: rooms, destinations,
// restaurants, the demo member's reservations and rewards.
package catalog

import "napoleon_resorts/internal/domain"

func price(d int64) *domain.Cents {
	c := domain.Dollars(d)
	return &c
}

// Rooms returns a fresh copy of the room inventory in display order.
func Rooms() []domain.Room {
	return []domain.Room{
		{
			ID:            "1",
			Name:          "Emperor Suite",
			Type:          "Suite",
			SizeSqFt:      1200,
			MaxGuests:     4,
			Price:         domain.Dollars(899),
			OriginalPrice: price(1199),
			Amenities:     []string{"King Bed", "Sofa Bed", "Jacuzzi", "Balcony", "Mini Bar"},
			Features:      []string{"Casino View", "Marble Bathroom", "24/7 Butler Service"},
			Description:   "The pinnacle of luxury with panoramic casino views and premium amenities.",
			Availability:  3,
		},
		{
			ID:            "2",
			Name:          "Royal King Room",
			Type:          "Deluxe",
			SizeSqFt:      650,
			MaxGuests:     2,
			Price:         domain.Dollars(449),
			OriginalPrice: price(599),
			Amenities:     []string{"King Bed", "Work Desk", "Mini Fridge", "Coffee Maker"},
			Features:      []string{"City View", "Marble Bathroom", "Premium Linens"},
			Description:   "Elegant accommodations with modern amenities and stunning city views.",
			Availability:  8,
		},
		{
			ID:           "3",
			Name:         "Napoleon Standard",
			Type:         "Standard",
			SizeSqFt:     450,
			MaxGuests:    2,
			Price:        domain.Dollars(299),
			Amenities:    []string{"Queen Bed", "Work Desk", "Coffee Maker"},
			Features:     []string{"Modern Design", "Free WiFi", "Flat Screen TV"},
			Description:  "Comfortable and stylish rooms perfect for a casino getaway.",
			Availability: 12,
		},
		{
			ID:           "4",
			Name:         "Crown Double",
			Type:         "Standard",
			SizeSqFt:     500,
			MaxGuests:    4,
			Price:        domain.Dollars(399),
			Amenities:    []string{"Two Queen Beds", "Mini Fridge", "Work Area"},
			Features:     []string{"Family Friendly", "Extra Space", "Modern Amenities"},
			Description:  "Spacious rooms ideal for families or groups visiting our casino.",
			Availability: 6,
		},
	}
}
