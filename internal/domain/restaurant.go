package domain

type Restaurant struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	Location     string   `json:"location"`
	Rating       float64  `json:"rating"`
	PriceRange   string   `json:"price_range"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Hours        string   `json:"hours"`
	Dress        string   `json:"dress"`
	Reservations bool     `json:"reservations"`
	Phone        string   `json:"phone"`
}

var CuisineTypes = []string{
	AnyValue, "Fine Dining", "Steakhouse", "Italian", "Asian",
	"American", "Buffet", "Bar & Grill", "Desserts",
}

type RestaurantsQuery struct {
	Search   string
	Cuisine  string
	Location string
}
