package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"venues-server/api"
	"venues-server/models"
	"venues-server/models/venue"
)

// CatalogApiClient reads the catalog from an upstream HTTP API.
type CatalogApiClient struct {
	*api.HTTPClient
}

func NewCatalogApiClient(httpClient *api.HTTPClient) *CatalogApiClient {
	return &CatalogApiClient{
		HTTPClient: httpClient,
	}
}

// GetVenues fetches GET /venues.
func (c *CatalogApiClient) GetVenues() (*models.CatalogResponse, error) {
	var response models.CatalogResponse
	if err := c.Request(http.MethodGet, "/venues", nil, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch venue catalog: %w", err)
	}
	return &response, nil
}

// GetVenue fetches GET /venues/{id}.
func (c *CatalogApiClient) GetVenue(venueID string) (*venue.Venue, error) {
	var response venue.Venue
	err := c.Request(http.MethodGet, "/venues/"+url.PathEscape(venueID), nil, nil, &response)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
		}
		return nil, fmt.Errorf("failed to fetch venue %s: %w", venueID, err)
	}
	return &response, nil
}
