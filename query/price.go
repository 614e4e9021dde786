package query

import (
	"strconv"
	"strings"
)

// LowerBound extracts the lower hourly price from a "<low>-<high>" string such
// as "$25-45" or "₹500-2000/hour". Leading non-digit characters of the part
// before the first '-' are skipped and the following digit run is parsed.
// ok is false when no number can be read.
func LowerBound(priceRange string) (int, bool) {
	head := priceRange
	if i := strings.IndexByte(head, '-'); i >= 0 {
		head = head[:i]
	}
	head = strings.TrimLeftFunc(head, func(r rune) bool { return r < '0' || r > '9' })

	end := 0
	for end < len(head) && head[end] >= '0' && head[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(head[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// lowerBoundOrZero is the sort-side policy: malformed prices rank as 0.
func lowerBoundOrZero(priceRange string) int {
	n, _ := LowerBound(priceRange)
	return n
}
