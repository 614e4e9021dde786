package models

import "venues-server/models/venue"

const (
	STATUS_OK         = "ok"
	STATUS_NO_RESULTS = "no_results"
)

// VenueFilterResponse is the body of GET /v1/venues.
type VenueFilterResponse struct {
	Status  string        `json:"status"`
	Venues  []venue.Venue `json:"venues"`
	VenuesN int           `json:"venues_n"` // matches before paging
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	HasMore bool          `json:"has_more"`
	Filters FilterSpec    `json:"filters"`
	Links   Link          `json:"_links"`
}
