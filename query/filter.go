package query

import (
	"strings"

	"venues-server/models"
	"venues-server/models/venue"
)

// FilterVenues keeps the venues matching every active predicate of spec,
// preserving catalog order. The catalog is not modified.
func FilterVenues(catalog []venue.Venue, spec models.FilterSpec) []venue.Venue {
	spec = spec.Normalized()
	search := strings.ToLower(spec.SearchQuery)
	location := strings.ToLower(spec.Location)

	out := make([]venue.Venue, 0, len(catalog))
	for i := range catalog {
		v := &catalog[i]
		if matchesSearch(v, search) &&
			matchesLocation(v, location) &&
			matchesSports(v, spec.SelectedSports) &&
			matchesPrice(v, spec.PriceRange) {
			out = append(out, *v)
		}
	}
	return out
}

// Matches reports whether a single venue passes all predicates of spec.
func Matches(v venue.Venue, spec models.FilterSpec) bool {
	spec = spec.Normalized()
	return matchesSearch(&v, strings.ToLower(spec.SearchQuery)) &&
		matchesLocation(&v, strings.ToLower(spec.Location)) &&
		matchesSports(&v, spec.SelectedSports) &&
		matchesPrice(&v, spec.PriceRange)
}

// search and location arrive lower-cased.
func matchesSearch(v *venue.Venue, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Name), search) ||
		strings.Contains(strings.ToLower(v.Location), search)
}

func matchesLocation(v *venue.Venue, location string) bool {
	if location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Location), location)
}

// any selected sport offered by the venue is enough
func matchesSports(v *venue.Venue, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, sport := range selected {
		if v.OffersSport(sport) {
			return true
		}
	}
	return false
}

func matchesPrice(v *venue.Venue, pr models.PriceRange) bool {
	if pr == models.PriceAny || !pr.Valid() {
		return true
	}
	p, ok := LowerBound(v.PriceRange)
	if !ok {
		return false
	}
	switch pr {
	case models.PriceUpTo25:
		return p <= 25
	case models.Price25To50:
		return p >= 25 && p <= 50
	case models.Price50To100:
		return p >= 50 && p <= 100
	case models.Price100AndUp:
		return p >= 100
	}
	return true
}
