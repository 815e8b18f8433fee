package domain

type Destination struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	State             string   `json:"state"`
	Region            string   `json:"region"`
	Rating            float64  `json:"rating"`
	Rooms             int      `json:"rooms"`
	Restaurants       int      `json:"restaurants"`
	Description       string   `json:"description"`
	Highlights        []string `json:"highlights"`
	Amenities         []string `json:"amenities"`
	NearbyAttractions []string `json:"nearby_attractions"`
	Phone             string   `json:"phone"`
	Website           string   `json:"website"`
	Coords            Coords   `json:"coordinates"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

const (
	SortByRating = "rating"
	SortByName   = "name"
	SortByRooms  = "rooms"

	AnyValue = "All"
)

// Regions lists the region filter values in display order.
var Regions = []string{AnyValue, "West", "South", "Northeast", "Midwest"}

type DestinationsQuery struct {
	Search string
	Region string // "" or "All" matches every region
	SortBy string // rating (default) | name | rooms
}
