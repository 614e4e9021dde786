package models

import "errors"

var (
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrInvalidSortKey    = errors.New("invalid sort key")
	ErrInvalidPaging     = errors.New("invalid paging")
)
