package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"venues-server/models"
	"venues-server/models/venue"
)

// NameLocale is the collation used for the name sort key.
var NameLocale = language.English

// SortVenues returns a new slice ordered by key. The sort is stable: venues
// equal under key keep their input order. An unknown key keeps input order.
func SortVenues(filtered []venue.Venue, key models.SortKey) []venue.Venue {
	out := make([]venue.Venue, len(filtered))
	copy(out, filtered)

	if key == "" {
		key = models.DefaultSortKey
	}

	var less func(a, b *venue.Venue) bool
	switch key {
	case models.SortByRating:
		less = func(a, b *venue.Venue) bool { return a.Rating > b.Rating }
	case models.SortByPriceLow:
		less = func(a, b *venue.Venue) bool {
			return lowerBoundOrZero(a.PriceRange) < lowerBoundOrZero(b.PriceRange)
		}
	case models.SortByPriceHigh:
		less = func(a, b *venue.Venue) bool {
			return lowerBoundOrZero(a.PriceRange) > lowerBoundOrZero(b.PriceRange)
		}
	case models.SortByReviews:
		less = func(a, b *venue.Venue) bool { return a.ReviewCount > b.ReviewCount }
	case models.SortByName:
		// a Collator keeps scratch buffers, so each call gets its own
		c := collate.New(NameLocale)
		less = func(a, b *venue.Venue) bool { return c.CompareString(a.Name, b.Name) < 0 }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}
