package venue

import "fmt"

// Availability labels shown on venue cards. They are advisory only.
const (
	AvailabilityAvailable = "Available"
	AvailabilityBusy      = "Busy"
)

// Venue represents a bookable sports facility as listed in the catalog.
type Venue struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Sports       []string `json:"sports"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	PriceRange   string   `json:"price_range"`
	Availability string   `json:"availability,omitempty"`
	Capacity     *int     `json:"capacity,omitempty"`
	Image        string   `json:"image,omitempty"`

	// Extra details only used by the venue detail page.
	Details *Details `json:"details,omitempty"`
}

// OffersSport reports whether the venue lists the sport (exact name match).
func (v *Venue) OffersSport(sport string) bool {
	for _, s := range v.Sports {
		if s == sport {
			return true
		}
	}
	return false
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, location=%s, rating=%.1f, price=%s)",
		v.ID, v.Name, v.Location, v.Rating, v.PriceRange)
}
