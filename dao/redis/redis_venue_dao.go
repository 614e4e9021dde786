package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"venues-server/db"
	"venues-server/models/venue"
)

const VENUE_KEY_FORMAT_V1 = "venue_v1:%s"

// VENUES_CATALOG_INDEX_KEY_V1 holds the JSON array of venue ids in catalog order.
const VENUES_CATALOG_INDEX_KEY_V1 = "venues_catalog_index_v1"

var ErrVenueNotFound = errors.New("venue not found")

// RedisVenueDAO caches the venue catalog in Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

func venueKey(id string) string {
	return fmt.Sprintf(VENUE_KEY_FORMAT_V1, id)
}

// ReplaceCatalog stores venues as the whole catalog, keeping their order,
// and drops cached venues that are no longer part of it.
func (dao *RedisVenueDAO) ReplaceCatalog(venues []venue.Venue) error {
	previous, err := dao.ListVenueIDs()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(venues))
	current := make(map[string]bool, len(venues))
	for _, v := range venues {
		if err := dao.putVenue(v); err != nil {
			return err
		}
		ids = append(ids, v.ID)
		current[v.ID] = true
	}
	if err := dao.writeIndex(ids); err != nil {
		return err
	}

	var stale []string
	for _, id := range previous {
		if !current[id] {
			stale = append(stale, venueKey(id))
		}
	}
	if len(stale) > 0 {
		if err := dao.client.Del(stale...); err != nil {
			return fmt.Errorf("[RedisVenueDAO] failed to delete stale venues: %w", err)
		}
		log.Printf("[RedisVenueDAO] Removed %d stale venues", len(stale))
	}
	return nil
}

// UpsertVenue stores a venue, appending it to the catalog when it is new.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	if err := dao.putVenue(v); err != nil {
		return err
	}
	ids, err := dao.ListVenueIDs()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == v.ID {
			return nil
		}
	}
	return dao.writeIndex(append(ids, v.ID))
}

// GetCatalog returns every cached venue in catalog order. Venues whose blob
// is missing or unreadable are skipped.
func (dao *RedisVenueDAO) GetCatalog() ([]venue.Venue, error) {
	ids, err := dao.ListVenueIDs()
	if err != nil {
		return nil, err
	}

	venues := make([]venue.Venue, 0, len(ids))
	for _, id := range ids {
		v, err := dao.GetVenue(id)
		if err != nil {
			log.Printf("[RedisVenueDAO] Skipping venue %s: %v", id, err)
			continue
		}
		venues = append(venues, *v)
	}
	return venues, nil
}

// GetVenue retrieves a single cached venue by id.
func (dao *RedisVenueDAO) GetVenue(id string) (*venue.Venue, error) {
	str, err := dao.client.Get(venueKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, id)
		}
		return nil, fmt.Errorf("failed to get venue from redis: %w", err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}

// ListVenueIDs returns the catalog ids in order; an empty cache yields none.
func (dao *RedisVenueDAO) ListVenueIDs() ([]string, error) {
	str, err := dao.client.Get(VENUES_CATALOG_INDEX_KEY_V1)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read catalog index: %w", err)
	}
	var ids []string
	if err := json.Unmarshal([]byte(str), &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog index: %w", err)
	}
	return ids, nil
}

func (dao *RedisVenueDAO) putVenue(v venue.Venue) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal venue %s: %w", v.ID, err)
	}
	if err := dao.client.Set(venueKey(v.ID), string(data)); err != nil {
		return fmt.Errorf("failed to set venue %s in redis: %w", v.ID, err)
	}
	return nil
}

func (dao *RedisVenueDAO) writeIndex(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog index: %w", err)
	}
	if err := dao.client.Set(VENUES_CATALOG_INDEX_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to write catalog index: %w", err)
	}
	return nil
}
