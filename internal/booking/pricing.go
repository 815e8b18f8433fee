package booking

import "napoleon_resorts/internal/domain"

const (
	TaxRatePercent              = 15
	FlatFee        domain.Cents = 2500
)

// PriceRoom computes the stay price of room for nights. The fee is charged even for zero
// nights. Tax is rounded half-up to the cent; every other term is exact.
func PriceRoom(room domain.Room, nights int) domain.PricingResult {
	if nights < 0 {
		nights = 0
	}
	roomTotal := room.Price * domain.Cents(nights)
	taxes := percentOf(roomTotal, TaxRatePercent)
	return domain.PricingResult{
		Nights:    nights,
		RoomTotal: roomTotal,
		Taxes:     taxes,
		Fees:      FlatFee,
		Total:     roomTotal + taxes + FlatFee,
	}
}

// PriceRooms prices every room for the same stay length.
func PriceRooms(rooms []domain.Room, nights int) []domain.PricedRoom {
	out := make([]domain.PricedRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, domain.PricedRoom{Room: r, Pricing: PriceRoom(r, nights)})
	}
	return out
}

func percentOf(c domain.Cents, pct int64) domain.Cents {
	return domain.Cents((int64(c)*pct + 50) / 100)
}
