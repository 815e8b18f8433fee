package catalog

import (
	"time"

	"napoleon_resorts/internal/domain"
)

func day(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic("catalog: bad date " + s)
	}
	return &t
}

// Reservations are the demo member's bookings.
func Reservations() []domain.Reservation {
	return []domain.Reservation{
		{
			ID: "1", Type: domain.ReservationHotel, Status: domain.StatusConfirmed,
			Property: "Napoleon Las Vegas", Location: "Las Vegas, Nevada",
			CheckIn: day("2024-03-15"), CheckOut: day("2024-03-18"),
			Guests: 2, RoomType: "Emperor Suite", TotalAmount: domain.Dollars(2697),
			ConfirmationNumber: "NAP-LV-001234",
			SpecialRequests:    "Late checkout requested",
			CreatedAt:          *day("2024-02-15"),
		},
		{
			ID: "2", Type: domain.ReservationRestaurant, Status: domain.StatusConfirmed,
			Property: "Crown Steakhouse", Location: "Atlantic City, New Jersey",
			ReservationDate: day("2024-02-28"), ReservationTime: "7:30 PM",
			Guests: 4, TableType: "Private Dining Room", TotalAmount: domain.Dollars(320),
			ConfirmationNumber: "NAP-AC-005678",
			SpecialRequests:    "Anniversary celebration",
			CreatedAt:          *day("2024-02-10"),
		},
		{
			ID: "3", Type: domain.ReservationHotel, Status: domain.StatusPending,
			Property: "Napoleon New Orleans", Location: "New Orleans, Louisiana",
			CheckIn: day("2024-04-10"), CheckOut: day("2024-04-13"),
			Guests: 3, RoomType: "Royal King Room", TotalAmount: domain.Dollars(1347),
			ConfirmationNumber: "NAP-NO-009876",
			CreatedAt:          *day("2024-02-20"),
		},
		{
			ID: "4", Type: domain.ReservationHotel, Status: domain.StatusCompleted,
			Property: "Napoleon Biloxi", Location: "Biloxi, Mississippi",
			CheckIn: day("2024-01-20"), CheckOut: day("2024-01-23"),
			Guests: 2, RoomType: "Napoleon Standard", TotalAmount: domain.Dollars(897),
			ConfirmationNumber: "NAP-BI-543210",
			CreatedAt:          *day("2024-01-01"),
		},
	}
}
