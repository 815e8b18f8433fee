package catalog

import "napoleon_resorts/internal/domain"

func Restaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID: 1, Name: "Emperor's Table", Cuisine: "Fine Dining", Location: "Las Vegas, NV",
			Rating: 4.9, PriceRange: "$$$$",
			Description:  "An elegant fine dining experience featuring contemporary French cuisine with a modern twist.",
			Features:     []string{"Wine Pairing", "Private Dining", "Chef's Table"},
			Hours:        "5:00 PM - 11:00 PM",
			Dress:        "Business Casual",
			Reservations: true,
			Phone:        "(702) 555-0123",
		},
		{
			ID: 2, Name: "Crown Steakhouse", Cuisine: "Steakhouse", Location: "Atlantic City, NJ",
			Rating: 4.8, PriceRange: "$$$",
			Description:  "Premium aged steaks and fresh seafood in a sophisticated atmosphere.",
			Features:     []string{"Dry-Aged Beef", "Raw Bar", "Extensive Wine List"},
			Hours:        "4:00 PM - 12:00 AM",
			Dress:        "Smart Casual",
			Reservations: true,
			Phone:        "(609) 555-0456",
		},
		{
			ID: 3, Name: "Bella Vista", Cuisine: "Italian", Location: "New Orleans, LA",
			Rating: 4.7, PriceRange: "$$$",
			Description:  "Authentic Italian flavors with handmade pasta and wood-fired pizzas.",
			Features:     []string{"Wood-Fired Oven", "Fresh Pasta", "Gelato Bar"},
			Hours:        "11:00 AM - 11:00 PM",
			Dress:        "Casual",
			Reservations: true,
			Phone:        "(504) 555-0789",
		},
		{
			ID: 4, Name: "Dynasty", Cuisine: "Asian", Location: "Las Vegas, NV",
			Rating: 4.6, PriceRange: "$$",
			Description:  "Contemporary Asian fusion cuisine with sushi bar and teppanyaki grills.",
			Features:     []string{"Sushi Bar", "Teppanyaki", "Dim Sum"},
			Hours:        "12:00 PM - 2:00 AM",
			Dress:        "Casual",
			Reservations: true,
			Phone:        "(702) 555-0321",
		},
		{
			ID: 5, Name: "Royal Buffet", Cuisine: "Buffet", Location: "Biloxi, MS",
			Rating: 4.5, PriceRange: "$$",
			Description:  "International buffet featuring over 200 items including seafood, steaks, and desserts.",
			Features:     []string{"Seafood Station", "Carving Station", "Dessert Bar"},
			Hours:        "6:00 AM - 11:00 PM",
			Dress:        "Casual",
			Reservations: false,
			Phone:        "(228) 555-0654",
		},
		{
			ID: 6, Name: "Sunset Grill", Cuisine: "American", Location: "Phoenix, AZ",
			Rating: 4.4, PriceRange: "$$",
			Description:  "Classic American cuisine with a contemporary twist and outdoor patio dining.",
			Features:     []string{"Outdoor Seating", "Sports Bar", "Happy Hour"},
			Hours:        "11:00 AM - 1:00 AM",
			Dress:        "Casual",
			Reservations: true,
			Phone:        "(602) 555-0987",
		},
	}
}
