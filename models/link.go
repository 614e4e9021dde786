package models

// Link carries the navigation links of a listing response.
type Link struct {
	Self         string `json:"self"`
	ClearFilters string `json:"clear_filters"` // listing with every filter reset
	NextPage     string `json:"next_page,omitempty"`
}
