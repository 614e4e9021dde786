// Package query implements the venue search pipeline: filter a catalog by a
// FilterSpec, then order the survivors by the spec's sort key.
//
// Every function is pure. Inputs are never modified and nothing is retained
// between calls, so callers may run a query on every keystroke.
package query

import (
	"venues-server/models"
	"venues-server/models/venue"
)

// QueryVenues filters catalog by spec and sorts the result by spec.SortKey.
func QueryVenues(catalog []venue.Venue, spec models.FilterSpec) []venue.Venue {
	spec = spec.Normalized()
	return SortVenues(FilterVenues(catalog, spec), spec.SortKey)
}

// Page slices an ordered result for the listing. It reports whether more
// venues follow the returned page.
func Page(result []venue.Venue, page, limit int) ([]venue.Venue, bool) {
	if limit <= 0 || page < 0 || page >= len(result) {
		return []venue.Venue{}, false
	}
	start := page * limit
	if start >= len(result) {
		return []venue.Venue{}, false
	}
	end := start + limit
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], end < len(result)
}
