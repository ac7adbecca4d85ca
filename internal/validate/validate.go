package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ID validates a resource identifier path/query parameter. Both numeric
// and string ids pass; comparison against stored ids is loose downstream.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Query trims and clamps a search query. An empty result is legal: the
// search layer maps it to an empty result set.
func Query(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// Quantity parses a purchase quantity: a non-negative integer. Zero is
// allowed (a stock no-op).
func Quantity(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || n < 0 {
			return 0, false
		}
		return int(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return n, true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || parsed < 0 {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Price validates an admin-supplied price: finite and positive.
func Price(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p > 0
}
