package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"venues-server/api/catalog"
	"venues-server/dao/redis"
	"venues-server/metrics"
	"venues-server/models"
	"venues-server/models/venue"
	"venues-server/query"
)

// VENUES_PATH is the listing route the response links point at.
const VENUES_PATH = "/v1/venues"

type VenueService struct {
	venueDao   *redis.RedisVenueDAO
	catalogAPI catalog.CatalogAPI
	metrics    *metrics.Metrics
	pageLimit  int
}

// NewVenueService constructs a new VenueService over the cached catalog.
// catalogAPI is consulted for venues missing from the cache; it and m may
// be nil.
func NewVenueService(
	venueDao *redis.RedisVenueDAO,
	catalogAPI catalog.CatalogAPI,
	m *metrics.Metrics,
	pageLimit int) *VenueService {

	if pageLimit <= 0 {
		pageLimit = models.DefaultPageLimit
	}
	return &VenueService{
		venueDao:   venueDao,
		catalogAPI: catalogAPI,
		metrics:    m,
		pageLimit:  pageLimit,
	}
}

func (vs *VenueService) PageLimit() int {
	return vs.pageLimit
}

// QueryVenues runs the filter and sort pipeline over the cached catalog and
// returns the requested page.
func (vs *VenueService) QueryVenues(params models.VenueFilterParams) (*models.VenueFilterResponse, error) {
	catalog, err := vs.venueDao.GetCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	spec := params.Spec.Normalized()
	if params.Limit <= 0 {
		params.Limit = vs.pageLimit
	}

	result := query.QueryVenues(catalog, spec)
	page, hasMore := query.Page(result, params.Page, params.Limit)
	vs.metrics.ObserveVenueQuery(string(spec.SortKey), len(result))

	status := models.STATUS_OK
	if len(result) == 0 {
		status = models.STATUS_NO_RESULTS
	}

	return &models.VenueFilterResponse{
		Status:  status,
		Venues:  page,
		VenuesN: len(result),
		Page:    params.Page,
		Limit:   params.Limit,
		HasMore: hasMore,
		Filters: spec,
		Links:   vs.links(models.VenueFilterParams{Spec: spec, Page: params.Page, Limit: params.Limit}, hasMore),
	}, nil
}

func (vs *VenueService) links(params models.VenueFilterParams, hasMore bool) models.Link {
	link := models.Link{
		Self:         withQuery(VENUES_PATH, params.ToValues(vs.pageLimit).Encode()),
		ClearFilters: VENUES_PATH,
	}
	if hasMore {
		next := params
		next.Page++
		link.NextPage = withQuery(VENUES_PATH, next.ToValues(vs.pageLimit).Encode())
	}
	return link
}

func withQuery(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

// GetVenue returns a cached venue with its details. A venue added upstream
// since the last refresh is fetched from the catalog and cached.
func (vs *VenueService) GetVenue(venueID string) (*venue.Venue, error) {
	v, err := vs.venueDao.GetVenue(venueID)
	if err == nil || !errors.Is(err, redis.ErrVenueNotFound) || vs.catalogAPI == nil {
		return v, err
	}

	log.Printf("[VenueService] Venue %s not cached, asking the catalog", venueID)
	fetched, apiErr := vs.catalogAPI.GetVenue(venueID)
	if apiErr != nil {
		if !errors.Is(apiErr, catalog.ErrVenueNotFound) {
			log.Printf("[VenueService] Catalog lookup for %s failed: %v", venueID, apiErr)
		}
		return nil, err
	}

	clean, rejected := venue.Sanitize([]venue.Venue{*fetched})
	if len(clean) == 0 || clean[0].ID != venueID {
		for _, r := range rejected {
			log.Printf("[VenueService] Rejected venue: %v", r)
		}
		return nil, err
	}

	if upsertErr := vs.venueDao.UpsertVenue(clean[0]); upsertErr != nil {
		log.Printf("[VenueService] Failed to cache %s: %v", clean[0].ToString(), upsertErr)
	} else {
		log.Printf("[VenueService] Cached %s", clean[0].ToString())
	}
	return &clean[0], nil
}

func (vs *VenueService) GetCatalog() ([]venue.Venue, error) {
	return vs.venueDao.GetCatalog()
}

// FindVenueByName looks a venue up by its display name, ignoring case.
func (vs *VenueService) FindVenueByName(name string) (*venue.Venue, error) {
	catalog, err := vs.venueDao.GetCatalog()
	if err != nil {
		return nil, err
	}
	for i := range catalog {
		if strings.EqualFold(catalog[i].Name, strings.TrimSpace(name)) {
			return &catalog[i], nil
		}
	}
	log.Printf("[VenueService] No venue named %q", name)
	return nil, fmt.Errorf("%w: %s", redis.ErrVenueNotFound, name)
}

func (vs *VenueService) FilterOptions() models.FilterOptions {
	return models.NewFilterOptions()
}
