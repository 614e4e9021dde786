package venue

// Details holds the long-form venue information displayed on the detail page.
type Details struct {
	Description  string        `json:"description,omitempty"`
	FullAddress  string        `json:"full_address,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Email        string        `json:"email,omitempty"`
	Images       []string      `json:"images,omitempty"`
	Courts       []Court       `json:"courts,omitempty"`
	Amenities    []string      `json:"amenities,omitempty"`
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`
	Reviews      []Review      `json:"reviews,omitempty"`
}

// Court is a single bookable court or field inside a venue.
type Court struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Sport    string   `json:"sport"`
	Price    string   `json:"price"`
	Capacity string   `json:"capacity,omitempty"`
	Features []string `json:"features,omitempty"`
}

type OpeningHours struct {
	Weekdays string `json:"weekdays"`
	Weekends string `json:"weekends"`
}

type Review struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
	Comment string `json:"comment"`
}
