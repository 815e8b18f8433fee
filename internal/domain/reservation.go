package domain

import "time"

type ReservationType string

const (
	ReservationHotel      ReservationType = "hotel"
	ReservationRestaurant ReservationType = "restaurant"
)

type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusPending   ReservationStatus = "pending"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

type Reservation struct {
	ID                 string            `json:"id"`
	Type               ReservationType   `json:"type"`
	Status             ReservationStatus `json:"status"`
	Property           string            `json:"property"`
	Location           string            `json:"location"`
	CheckIn            *time.Time        `json:"check_in,omitempty"`
	CheckOut           *time.Time        `json:"check_out,omitempty"`
	ReservationDate    *time.Time        `json:"reservation_date,omitempty"`
	ReservationTime    string            `json:"reservation_time,omitempty"`
	Guests             int               `json:"guests"`
	RoomType           string            `json:"room_type,omitempty"`
	TableType          string            `json:"table_type,omitempty"`
	TotalAmount        Cents             `json:"total_amount_cents"`
	ConfirmationNumber string            `json:"confirmation_number"`
	SpecialRequests    string            `json:"special_requests,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

// TargetDate is the day the guest shows up: check-in for stays, the booked date for tables.
func (r Reservation) TargetDate() *time.Time {
	if r.CheckIn != nil {
		return r.CheckIn
	}
	return r.ReservationDate
}

// SortDate falls back to CreatedAt when there is no target date.
func (r Reservation) SortDate() time.Time {
	if t := r.TargetDate(); t != nil {
		return *t
	}
	return r.CreatedAt
}

const (
	TabAll        = "all"
	TabHotel      = "hotel"
	TabRestaurant = "restaurant"
	TabUpcoming   = "upcoming"
)

type ReservationsView struct {
	Items           []Reservation `json:"items"`
	UpcomingCount   int           `json:"upcoming_count"`
	HotelCount      int           `json:"hotel_count"`
	RestaurantCount int           `json:"restaurant_count"`
}
