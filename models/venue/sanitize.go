package venue

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

var (
	ErrMissingID       = errors.New("venue id is required")
	ErrMissingName     = errors.New("venue name is required")
	ErrRatingRange     = errors.New("venue rating out of range")
	ErrNegativeReviews = errors.New("venue review count is negative")
	ErrDuplicateID     = errors.New("duplicate venue id")
)

// Normalize returns a copy of v with whitespace trimmed, blank and repeated
// sports dropped and a non-positive capacity cleared.
func Normalize(v Venue) Venue {
	out := v
	out.ID = strings.TrimSpace(v.ID)
	out.Name = strings.TrimSpace(v.Name)
	out.Location = strings.TrimSpace(v.Location)
	out.PriceRange = strings.TrimSpace(v.PriceRange)
	out.Availability = strings.TrimSpace(v.Availability)

	sports := make([]string, 0, len(v.Sports))
	seen := make(map[string]bool, len(v.Sports))
	for _, s := range v.Sports {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		sports = append(sports, s)
	}
	out.Sports = sports

	if v.Capacity != nil {
		if *v.Capacity > 0 {
			c := *v.Capacity
			out.Capacity = &c
		} else {
			out.Capacity = nil
		}
	}
	return out
}

// Validate checks the invariants a venue must hold before it enters the catalog.
func Validate(v Venue) error {
	if v.ID == "" {
		return ErrMissingID
	}
	if v.Name == "" {
		return fmt.Errorf("%w (id=%s)", ErrMissingName, v.ID)
	}
	if v.Rating < MinRating || v.Rating > MaxRating {
		return fmt.Errorf("%w (id=%s, rating=%v)", ErrRatingRange, v.ID, v.Rating)
	}
	if v.ReviewCount < 0 {
		return fmt.Errorf("%w (id=%s, reviews=%d)", ErrNegativeReviews, v.ID, v.ReviewCount)
	}
	return nil
}

// Sanitize normalizes every record and keeps the valid ones in their original
// order. The first venue wins when ids repeat. Rejected records are reported
// through the returned errors.
func Sanitize(venues []Venue) ([]Venue, []error) {
	clean := make([]Venue, 0, len(venues))
	var rejected []error
	ids := make(map[string]bool, len(venues))

	for _, raw := range venues {
		v := Normalize(raw)
		if err := Validate(v); err != nil {
			rejected = append(rejected, err)
			continue
		}
		if ids[v.ID] {
			rejected = append(rejected, fmt.Errorf("%w: %s", ErrDuplicateID, v.ID))
			continue
		}
		ids[v.ID] = true
		clean = append(clean, v)
	}
	return clean, rejected
}
