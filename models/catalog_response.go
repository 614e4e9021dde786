package models

import "venues-server/models/venue"

// CatalogResponse is the venue collection as served by the upstream catalog
// API and stored in the bundled fixture.
type CatalogResponse struct {
	Status  string        `json:"status"`
	Venues  []venue.Venue `json:"venues"`
	VenuesN int           `json:"venues_n"`
}
