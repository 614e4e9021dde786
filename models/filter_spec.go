package models

// PriceRange buckets the lower bound of a venue's hourly price.
type PriceRange string

const (
	PriceAny      PriceRange = "any"
	PriceUpTo25   PriceRange = "0-25"
	Price25To50   PriceRange = "25-50"
	Price50To100  PriceRange = "50-100"
	Price100AndUp PriceRange = "100+"
)

// PriceRanges lists every accepted bucket in display order.
var PriceRanges = []PriceRange{PriceAny, PriceUpTo25, Price25To50, Price50To100, Price100AndUp}

func (p PriceRange) Valid() bool {
	for _, r := range PriceRanges {
		if p == r {
			return true
		}
	}
	return false
}

// SortKey selects the single key the listing is ordered by.
type SortKey string

const (
	SortByRating    SortKey = "rating"
	SortByPriceLow  SortKey = "price-low"
	SortByPriceHigh SortKey = "price-high"
	SortByReviews   SortKey = "reviews"
	SortByName      SortKey = "name"
)

var SortKeys = []SortKey{SortByRating, SortByPriceLow, SortByPriceHigh, SortByReviews, SortByName}

func (k SortKey) Valid() bool {
	for _, s := range SortKeys {
		if k == s {
			return true
		}
	}
	return false
}

const (
	DefaultPriceRange = PriceAny
	DefaultSortKey    = SortByRating
)

// FilterSpec is the set of filter and sort criteria chosen while browsing.
// The zero value is usable: empty fields mean "no filter" and the default sort.
type FilterSpec struct {
	SearchQuery    string     `json:"search_query"`
	Location       string     `json:"location"`
	SelectedSports []string   `json:"selected_sports"`
	PriceRange     PriceRange `json:"price_range"`
	SortKey        SortKey    `json:"sort_by"`
}

// DefaultFilterSpec returns a spec with every field at its default.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		SelectedSports: []string{},
		PriceRange:     DefaultPriceRange,
		SortKey:        DefaultSortKey,
	}
}

// Normalized returns a copy with missing fields replaced by their defaults.
// The sports slice is copied so the result never aliases the receiver.
func (s FilterSpec) Normalized() FilterSpec {
	out := s
	out.SelectedSports = append([]string{}, s.SelectedSports...)
	if out.PriceRange == "" {
		out.PriceRange = DefaultPriceRange
	}
	if out.SortKey == "" {
		out.SortKey = DefaultSortKey
	}
	return out
}

// IsDefault reports whether no filter is active and the default sort is used.
func (s FilterSpec) IsDefault() bool {
	n := s.Normalized()
	return n.SearchQuery == "" &&
		n.Location == "" &&
		len(n.SelectedSports) == 0 &&
		n.PriceRange == DefaultPriceRange &&
		n.SortKey == DefaultSortKey
}

// HasSport reports whether sport is currently selected.
func (s *FilterSpec) HasSport(sport string) bool {
	for _, sel := range s.SelectedSports {
		if sel == sport {
			return true
		}
	}
	return false
}

func (s *FilterSpec) SetSearchQuery(q string) { s.SearchQuery = q }

func (s *FilterSpec) SetLocation(location string) { s.Location = location }

// ToggleSport selects the sport when it is not selected and deselects it otherwise.
func (s *FilterSpec) ToggleSport(sport string) {
	if s.HasSport(sport) {
		kept := make([]string, 0, len(s.SelectedSports))
		for _, sel := range s.SelectedSports {
			if sel != sport {
				kept = append(kept, sel)
			}
		}
		s.SelectedSports = kept
		return
	}
	s.SelectedSports = append(append([]string{}, s.SelectedSports...), sport)
}

func (s *FilterSpec) SetPriceRange(p PriceRange) { s.PriceRange = p }

func (s *FilterSpec) SetSortKey(k SortKey) { s.SortKey = k }

// ClearAll resets every field to its default at once.
func (s *FilterSpec) ClearAll() { *s = DefaultFilterSpec() }
