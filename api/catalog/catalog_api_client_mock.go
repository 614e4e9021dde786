package catalog

import (
	"fmt"
	"log"

	"venues-server/models"
	"venues-server/models/venue"
	"venues-server/util"
)

// CatalogApiClientMock serves the catalog from a JSON fixture on disk.
type CatalogApiClientMock struct {
	path string
}

func NewCatalogApiClientMock(path string) *CatalogApiClientMock {
	return &CatalogApiClientMock{path: path}
}

func (c *CatalogApiClientMock) GetVenues() (*models.CatalogResponse, error) {
	response, err := util.ReadCatalogResponseFromJSON(c.path)
	if err != nil {
		log.Printf("[CatalogApiClientMock] Could not read catalog from %s", c.path)
		return nil, err
	}
	return response, nil
}

func (c *CatalogApiClientMock) GetVenue(venueID string) (*venue.Venue, error) {
	response, err := c.GetVenues()
	if err != nil {
		return nil, err
	}
	for i := range response.Venues {
		if response.Venues[i].ID == venueID {
			return &response.Venues[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
}
