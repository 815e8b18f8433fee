package catalog

import "napoleon_resorts/internal/domain"

func Destinations() []domain.Destination {
	return []domain.Destination{
		{
			ID: "las-vegas-nv", Name: "Las Vegas", State: "Nevada", Region: "West",
			Rating: 4.9, Rooms: 450, Restaurants: 8,
			Description:       "The crown jewel of Napoleon Casino Group, featuring world-class gaming, luxury suites, and award-winning dining on the famous Las Vegas Strip.",
			Highlights:        []string{"Vegas Strip Location", "24/7 Gaming", "Celebrity Chef Restaurants", "Luxury Spa"},
			Amenities:         []string{"Pool Complex", "Spa & Wellness", "Convention Center", "High-Limit Gaming"},
			NearbyAttractions: []string{"Bellagio Fountains", "High Roller", "Red Rock Canyon", "Hoover Dam"},
			Phone:             "(702) 555-0123",
			Website:           "napoleon-lasvegas.com",
			Coords:            domain.Coords{Lat: 36.1699, Lng: -115.1398},
		},
		{
			ID: "atlantic-city-nj", Name: "Atlantic City", State: "New Jersey", Region: "Northeast",
			Rating: 4.8, Rooms: 320, Restaurants: 6,
			Description:       "Oceanfront luxury casino resort with pristine beaches, boardwalk entertainment, and East Coast's finest gaming experience.",
			Highlights:        []string{"Oceanfront Views", "Boardwalk Access", "Beach Club", "Golf Course"},
			Amenities:         []string{"Beach Access", "Marina", "Golf Course", "Shopping Mall"},
			NearbyAttractions: []string{"Steel Pier", "Absecon Lighthouse", "Cape May", "Atlantic City Boardwalk"},
			Phone:             "(609) 555-0456",
			Website:           "napoleon-atlanticcity.com",
			Coords:            domain.Coords{Lat: 39.3643, Lng: -74.4229},
		},
		{
			ID: "new-orleans-la", Name: "New Orleans", State: "Louisiana", Region: "South",
			Rating: 4.7, Rooms: 280, Restaurants: 5,
			Description:       "Immerse yourself in the vibrant culture of the Big Easy with authentic Creole cuisine, jazz music, and Southern hospitality.",
			Highlights:        []string{"French Quarter Views", "Jazz Lounge", "Creole Cuisine", "Historic District"},
			Amenities:         []string{"Jazz Club", "Courtyard Pool", "Rooftop Bar", "Valet Parking"},
			NearbyAttractions: []string{"French Quarter", "Garden District", "Bourbon Street", "Mississippi River"},
			Phone:             "(504) 555-0789",
			Website:           "napoleon-neworleans.com",
			Coords:            domain.Coords{Lat: 29.9511, Lng: -90.0715},
		},
		{
			ID: "biloxi-ms", Name: "Biloxi", State: "Mississippi", Region: "South",
			Rating: 4.6, Rooms: 200, Restaurants: 4,
			Description:       "Gulf Coast gaming paradise with beautiful beaches, fresh seafood, and warm Southern charm.",
			Highlights:        []string{"Gulf Coast Beaches", "Seafood Buffet", "Fishing Charters", "Casino Boat"},
			Amenities:         []string{"Beach Club", "Fishing Pier", "Seafood Market", "Water Sports"},
			NearbyAttractions: []string{"Biloxi Beach", "Gulf Islands", "Biloxi Lighthouse", "Shrimping Industry Tour"},
			Phone:             "(228) 555-0321",
			Website:           "napoleon-biloxi.com",
			Coords:            domain.Coords{Lat: 30.396, Lng: -88.8853},
		},
		{
			ID: "reno-nv", Name: "Reno", State: "Nevada", Region: "West",
			Rating: 4.5, Rooms: 180, Restaurants: 3,
			Description:       "The biggest little city in the world offers mountain views, outdoor adventures, and authentic Nevada gaming.",
			Highlights:        []string{"Mountain Views", "Ski Resort Access", "Tahoe Day Trips", "Adventure Sports"},
			Amenities:         []string{"Ski Shuttle", "Adventure Concierge", "Mountain Bike Rental", "Outdoor Pool"},
			NearbyAttractions: []string{"Lake Tahoe", "Mount Rose", "Virginia City", "Pyramid Lake"},
			Phone:             "(775) 555-0654",
			Website:           "napoleon-reno.com",
			Coords:            domain.Coords{Lat: 39.5296, Lng: -119.8138},
		},
		{
			ID: "tunica-ms", Name: "Tunica", State: "Mississippi", Region: "South",
			Rating: 4.4, Rooms: 150, Restaurants: 3,
			Description:       "Delta region gaming destination with Southern comfort, blues music, and Mississippi River charm.",
			Highlights:        []string{"Blues Heritage", "Delta Cuisine", "River Views", "Golf Resort"},
			Amenities:         []string{"Championship Golf", "Blues Club", "River Tours", "Delta Museum"},
			NearbyAttractions: []string{"Mississippi River", "Blues Trail", "Memphis", "Graceland"},
			Phone:             "(662) 555-0987",
			Website:           "napoleon-tunica.com",
			Coords:            domain.Coords{Lat: 34.6859, Lng: -90.3826},
		},
	}
}
