package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"venues-server/api/catalog"
	"venues-server/dao/redis"
	"venues-server/db"
	"venues-server/models"
	"venues-server/models/venue"
	"venues-server/util"
)

const fixturePath = "../resources/venues.json"

func loadFixture(t *testing.T) []venue.Venue {
	t.Helper()
	resp, err := util.ReadCatalogResponseFromJSON(fixturePath)
	require.NoError(t, err)
	return resp.Venues
}

// newSeededDAO returns a DAO whose cache already holds the fixture catalog.
func newSeededDAO(t *testing.T) *redis.RedisVenueDAO {
	t.Helper()
	dao := redis.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	require.NoError(t, dao.ReplaceCatalog(loadFixture(t)))
	return dao
}

func ids(venues []venue.Venue) []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.ID)
	}
	return out
}

type stubCatalogAPI struct {
	mu       sync.Mutex
	resp     *models.CatalogResponse
	err      error
	calls    int
	venue    *venue.Venue
	venueErr error
}

func (s *stubCatalogAPI) GetVenues() (*models.CatalogResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.resp, s.err
}

func (s *stubCatalogAPI) GetVenue(venueID string) (*venue.Venue, error) {
	if s.venueErr != nil {
		return nil, s.venueErr
	}
	if s.venue == nil || s.venue.ID != venueID {
		return nil, fmt.Errorf("%w: %s", catalog.ErrVenueNotFound, venueID)
	}
	v := *s.venue
	return &v, nil
}

func (s *stubCatalogAPI) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
