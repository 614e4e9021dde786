package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query string arguments understood by the listing endpoint.
const (
	SEARCH_QUERY_ARG = "q"
	LOCATION_ARG     = "location"
	SPORTS_ARG       = "sports"
	PRICE_RANGE_ARG  = "price_range"
	SORT_BY_ARG      = "sort_by"
	PAGE_ARG         = "page"
	LIMIT_ARG        = "limit"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// VenueFilterParams mirrors the listing query args: a FilterSpec plus paging.
type VenueFilterParams struct {
	Spec  FilterSpec
	Page  int // 0-based
	Limit int
}

// ParseVenueFilterParams reads the listing arguments from a query string.
// Absent arguments take their defaults; unknown enum values and malformed
// paging are rejected.
func ParseVenueFilterParams(vals url.Values, defaultLimit int) (VenueFilterParams, error) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultPageLimit
	}
	p := VenueFilterParams{Spec: DefaultFilterSpec(), Limit: defaultLimit}

	// search text is matched verbatim, surrounding spaces included
	p.Spec.SearchQuery = vals.Get(SEARCH_QUERY_ARG)
	p.Spec.Location = vals.Get(LOCATION_ARG)

	// accepts both ?sports=a,b and ?sports=a&sports=b
	for _, raw := range vals[SPORTS_ARG] {
		for _, sport := range strings.Split(raw, ",") {
			sport = strings.TrimSpace(sport)
			if sport != "" && !p.Spec.HasSport(sport) {
				p.Spec.SelectedSports = append(p.Spec.SelectedSports, sport)
			}
		}
	}

	if v := vals.Get(PRICE_RANGE_ARG); v != "" {
		pr := PriceRange(v)
		if !pr.Valid() {
			return p, fmt.Errorf("%w: %q", ErrInvalidPriceRange, v)
		}
		p.Spec.PriceRange = pr
	}
	if v := vals.Get(SORT_BY_ARG); v != "" {
		k := SortKey(v)
		if !k.Valid() {
			return p, fmt.Errorf("%w: %q", ErrInvalidSortKey, v)
		}
		p.Spec.SortKey = k
	}

	if v := vals.Get(PAGE_ARG); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 0 {
			return p, fmt.Errorf("%w: page %q", ErrInvalidPaging, v)
		}
		p.Page = page
	}
	if v := vals.Get(LIMIT_ARG); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 || limit > MaxPageLimit {
			return p, fmt.Errorf("%w: limit %q", ErrInvalidPaging, v)
		}
		p.Limit = limit
	}
	return p, nil
}

// ToValues encodes the filters back into query args, omitting defaults.
func (s FilterSpec) ToValues() url.Values {
	q := url.Values{}
	n := s.Normalized()

	if n.SearchQuery != "" {
		q.Set(SEARCH_QUERY_ARG, n.SearchQuery)
	}
	if n.Location != "" {
		q.Set(LOCATION_ARG, n.Location)
	}
	if len(n.SelectedSports) > 0 {
		q.Set(SPORTS_ARG, strings.Join(n.SelectedSports, ","))
	}
	if n.PriceRange != DefaultPriceRange {
		q.Set(PRICE_RANGE_ARG, string(n.PriceRange))
	}
	if n.SortKey != DefaultSortKey {
		q.Set(SORT_BY_ARG, string(n.SortKey))
	}
	return q
}

// ToValues encodes filters and paging; page 0 and the default limit are omitted.
func (p VenueFilterParams) ToValues(defaultLimit int) url.Values {
	q := p.Spec.ToValues()
	if p.Page > 0 {
		q.Set(PAGE_ARG, strconv.Itoa(p.Page))
	}
	if p.Limit > 0 && p.Limit != defaultLimit {
		q.Set(LIMIT_ARG, strconv.Itoa(p.Limit))
	}
	return q
}
