package models

// Sports offered as filter chips on the browsing page.
var Sports = []string{
	"Cricket", "Football", "Tennis", "Futsal", "Basketball", "Volleyball",
	"Badminton", "Table Tennis", "Swimming", "Gym",
}

var priceRangeLabels = map[PriceRange]string{
	PriceAny:      "Any Price",
	PriceUpTo25:   "$0 - $25",
	Price25To50:   "$25 - $50",
	Price50To100:  "$50 - $100",
	Price100AndUp: "$100+",
}

var sortKeyLabels = map[SortKey]string{
	SortByRating:    "Highest Rated",
	SortByPriceLow:  "Price: Low to High",
	SortByPriceHigh: "Price: High to Low",
	SortByReviews:   "Most Reviews",
	SortByName:      "Name A-Z",
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions feeds the filter/sort controls of the listing page.
type FilterOptions struct {
	Sports      []string   `json:"sports"`
	PriceRanges []Option   `json:"price_ranges"`
	SortKeys    []Option   `json:"sort_keys"`
	Defaults    FilterSpec `json:"defaults"`
}

func NewFilterOptions() FilterOptions {
	prices := make([]Option, 0, len(PriceRanges))
	for _, p := range PriceRanges {
		prices = append(prices, Option{Value: string(p), Label: priceRangeLabels[p]})
	}
	sorts := make([]Option, 0, len(SortKeys))
	for _, k := range SortKeys {
		sorts = append(sorts, Option{Value: string(k), Label: sortKeyLabels[k]})
	}
	return FilterOptions{
		Sports:      append([]string{}, Sports...),
		PriceRanges: prices,
		SortKeys:    sorts,
		Defaults:    DefaultFilterSpec(),
	}
}
