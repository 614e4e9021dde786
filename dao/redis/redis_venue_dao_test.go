package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venues-server/db"
	"venues-server/models/venue"
)

func newTestDAO() (*RedisVenueDAO, *db.MockRedisClient) {
	mockClient := db.NewMockRedisClient(context.Background())
	return NewRedisVenueDAO(mockClient), mockClient
}

func TestRedisVenueDAO_UpsertVenue_Success(t *testing.T) {
	dao, mockClient := newTestDAO()

	err := dao.UpsertVenue(venue.Venue{ID: "venue123", Name: "Test Venue", PriceRange: "$10-20"})
	require.NoError(t, err)

	// Verify data stored in mock Redis
	storedValue, err := mockClient.Get("venue_v1:venue123")
	require.NoError(t, err)

	var stored venue.Venue
	require.NoError(t, json.Unmarshal([]byte(storedValue), &stored))
	assert.Equal(t, "Test Venue", stored.Name)

	ids, err := dao.ListVenueIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"venue123"}, ids)
}

func TestRedisVenueDAO_UpsertVenue_ExistingKeepsPosition(t *testing.T) {
	dao, _ := newTestDAO()
	_ = dao.UpsertVenue(venue.Venue{ID: "a", Name: "A"})
	_ = dao.UpsertVenue(venue.Venue{ID: "b", Name: "B"})

	require.NoError(t, dao.UpsertVenue(venue.Venue{ID: "a", Name: "A renamed"}))

	catalog, err := dao.GetCatalog()
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "A renamed", catalog[0].Name)
	assert.Equal(t, "b", catalog[1].ID)
}

func TestRedisVenueDAO_ReplaceCatalog_KeepsOrderAndDropsStale(t *testing.T) {
	dao, mockClient := newTestDAO()
	require.NoError(t, dao.ReplaceCatalog([]venue.Venue{{ID: "1", Name: "One"}, {ID: "2", Name: "Two"}}))

	require.NoError(t, dao.ReplaceCatalog([]venue.Venue{{ID: "3", Name: "Three"}, {ID: "1", Name: "One"}}))

	catalog, err := dao.GetCatalog()
	require.NoError(t, err)
	assert.Equal(t, "3", catalog[0].ID)
	assert.Equal(t, "1", catalog[1].ID)

	_, err = mockClient.Get("venue_v1:2")
	assert.True(t, errors.Is(err, db.ErrKeyNotFound))
}

func TestRedisVenueDAO_GetCatalog_Empty(t *testing.T) {
	dao, _ := newTestDAO()

	catalog, err := dao.GetCatalog()

	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestRedisVenueDAO_GetCatalog_SkipsMissingBlobs(t *testing.T) {
	dao, mockClient := newTestDAO()
	_ = dao.ReplaceCatalog([]venue.Venue{{ID: "1", Name: "One"}, {ID: "2", Name: "Two"}})
	_ = mockClient.Del("venue_v1:1")

	catalog, err := dao.GetCatalog()

	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "2", catalog[0].ID)
}

func TestRedisVenueDAO_GetVenue_NotFound(t *testing.T) {
	dao, _ := newTestDAO()

	_, err := dao.GetVenue("nope")

	assert.True(t, errors.Is(err, ErrVenueNotFound))
}
