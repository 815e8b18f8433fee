package catalog

import "napoleon_resorts/internal/domain"

func Locations() []domain.Location {
	return []domain.Location{
		{Value: "las-vegas-nv", Label: "Las Vegas, Nevada", State: "Nevada"},
		{Value: "atlantic-city-nj", Label: "Atlantic City, New Jersey", State: "New Jersey"},
		{Value: "new-orleans-la", Label: "New Orleans, Louisiana", State: "Louisiana"},
		{Value: "biloxi-ms", Label: "Biloxi, Mississippi", State: "Mississippi"},
		{Value: "reno-nv", Label: "Reno, Nevada", State: "Nevada"},
		{Value: "tunica-ms", Label: "Tunica, Mississippi", State: "Mississippi"},
		{Value: "shreveport-la", Label: "Shreveport, Louisiana", State: "Louisiana"},
		{Value: "lake-charles-la", Label: "Lake Charles, Louisiana", State: "Louisiana"},
		{Value: "kansas-city-mo", Label: "Kansas City, Missouri", State: "Missouri"},
		{Value: "st-louis-mo", Label: "St. Louis, Missouri", State: "Missouri"},
		{Value: "chicago-il", Label: "Chicago, Illinois", State: "Illinois"},
		{Value: "detroit-mi", Label: "Detroit, Michigan", State: "Michigan"},
		{Value: "cleveland-oh", Label: "Cleveland, Ohio", State: "Ohio"},
		{Value: "cincinnati-oh", Label: "Cincinnati, Ohio", State: "Ohio"},
		{Value: "indianapolis-in", Label: "Indianapolis, Indiana", State: "Indiana"},
		{Value: "milwaukee-wi", Label: "Milwaukee, Wisconsin", State: "Wisconsin"},
		{Value: "des-moines-ia", Label: "Des Moines, Iowa", State: "Iowa"},
		{Value: "omaha-ne", Label: "Omaha, Nebraska", State: "Nebraska"},
		{Value: "denver-co", Label: "Denver, Colorado", State: "Colorado"},
		{Value: "albuquerque-nm", Label: "Albuquerque, New Mexico", State: "New Mexico"},
		{Value: "phoenix-az", Label: "Phoenix, Arizona", State: "Arizona"},
		{Value: "tucson-az", Label: "Tucson, Arizona", State: "Arizona"},
		{Value: "sacramento-ca", Label: "Sacramento, California", State: "California"},
		{Value: "san-diego-ca", Label: "San Diego, California", State: "California"},
		{Value: "portland-or", Label: "Portland, Oregon", State: "Oregon"},
		{Value: "seattle-wa", Label: "Seattle, Washington", State: "Washington"},
		{Value: "anchorage-ak", Label: "Anchorage, Alaska", State: "Alaska"},
		{Value: "honolulu-hi", Label: "Honolulu, Hawaii", State: "Hawaii"},
		{Value: "miami-fl", Label: "Miami, Florida", State: "Florida"},
		{Value: "tampa-fl", Label: "Tampa, Florida", State: "Florida"},
	}
}
