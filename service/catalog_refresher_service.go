package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"venues-server/api/catalog"
	"venues-server/dao/redis"
	"venues-server/metrics"
	"venues-server/models/venue"
)

var ErrEmptyCatalog = errors.New("catalog source returned no valid venues")

// CatalogRefresherService periodically reloads the venue catalog from its
// source into the cache.
type CatalogRefresherService struct {
	venueDao   *redis.RedisVenueDAO
	catalogAPI catalog.CatalogAPI
	metrics    *metrics.Metrics
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(
	venueDao *redis.RedisVenueDAO,
	catalogAPI catalog.CatalogAPI,
	m *metrics.Metrics,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		venueDao:   venueDao,
		catalogAPI: catalogAPI,
		metrics:    m,
	}
}

// StartPeriodicJob launches the background loop at the given interval. The
// loop ends when ctx is cancelled.
func (cr *CatalogRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go cr.startPeriodicJob(ctx, interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[CatalogRefresherService] Periodic job stopped.")
			return
		case <-ticker.C:
			log.Println("[CatalogRefresherService] Running periodic catalog refresh.")
			if _, err := cr.RefreshCatalog(ctx); err != nil {
				log.Printf("[CatalogRefresherService] RefreshCatalog returned error: %v", err)
			} else {
				log.Println("[CatalogRefresherService] RefreshCatalog completed successfully.")
			}
		}
	}
}

// RefreshCatalog fetches the catalog, drops invalid records and replaces the
// cached catalog with the rest. It returns the number of venues cached. On
// failure the previous catalog stays in place.
func (cr *CatalogRefresherService) RefreshCatalog(ctx context.Context) (n int, err error) {
	defer func() { cr.metrics.ObserveRefresh(err) }()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	resp, err := cr.catalogAPI.GetVenues()
	if err != nil {
		return 0, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	log.Printf("[CatalogRefresherService] Fetched %d venues", len(resp.Venues))

	clean, rejected := venue.Sanitize(resp.Venues)
	for _, r := range rejected {
		log.Printf("[CatalogRefresherService] Rejected venue: %v", r)
	}
	if len(clean) == 0 {
		return 0, ErrEmptyCatalog
	}

	for i := range clean {
		log.Printf("[CatalogRefresherService] Caching %s", clean[i].ToString())
	}
	if err := cr.venueDao.ReplaceCatalog(clean); err != nil {
		return 0, fmt.Errorf("failed to cache catalog: %w", err)
	}
	cr.metrics.SetCatalogSize(len(clean))
	log.Printf("[CatalogRefresherService] Cached %d venues (%d rejected)", len(clean), len(rejected))
	return len(clean), nil
}
