package catalog

import (
	"errors"

	"venues-server/models"
	"venues-server/models/venue"
)

var ErrVenueNotFound = errors.New("venue not found in catalog")

// CatalogAPI supplies the unfiltered venue collection.
type CatalogAPI interface {
	GetVenues() (*models.CatalogResponse, error)
	GetVenue(venueID string) (*venue.Venue, error)
}
