package query

import "venues-server/models/venue"

func intPtr(i int) *int { return &i }

// sampleCatalog is the six-venue catalog of the browsing page.
func sampleCatalog() []venue.Venue {
	return []venue.Venue{
		{ID: "1", Name: "Elite Sports Complex", Location: "Downtown City, Metro Area",
			Sports: []string{"Cricket", "Football", "Tennis", "Basketball"},
			Rating: 4.8, ReviewCount: 127, PriceRange: "$25-45", Availability: "Available", Capacity: intPtr(22)},
		{ID: "2", Name: "Champions Arena", Location: "North District, Suburbs",
			Sports: []string{"Futsal", "Basketball", "Volleyball", "Badminton"},
			Rating: 4.6, ReviewCount: 89, PriceRange: "$30-60", Availability: "Available", Capacity: intPtr(16)},
		{ID: "3", Name: "Ace Tennis Club", Location: "East Side, Tennis District",
			Sports: []string{"Tennis", "Badminton", "Table Tennis"},
			Rating: 4.9, ReviewCount: 203, PriceRange: "$20-35", Availability: "Available", Capacity: intPtr(4)},
		{ID: "4", Name: "Riverside Sports Park", Location: "Riverside, Park Area",
			Sports: []string{"Cricket", "Football", "Rugby", "Athletics"},
			Rating: 4.7, ReviewCount: 156, PriceRange: "$35-55", Availability: "Busy", Capacity: intPtr(30)},
		{ID: "5", Name: "Urban Fitness Hub", Location: "City Center, Business District",
			Sports: []string{"Gym", "Basketball", "Volleyball", "Fitness Classes"},
			Rating: 4.5, ReviewCount: 78, PriceRange: "$40-70", Availability: "Available", Capacity: intPtr(50)},
		{ID: "6", Name: "Premier Cricket Grounds", Location: "South Side, Sports Valley",
			Sports: []string{"Cricket", "Football"},
			Rating: 4.8, ReviewCount: 134, PriceRange: "$45-65", Availability: "Available", Capacity: intPtr(22)},
	}
}

func ids(venues []venue.Venue) []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.ID)
	}
	return out
}
