package tip

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts bill or tax text to a non-negative amount, or 0.
func ParseAmount(text string) float64 {
	v, _ := parseNonNegative(text, 0)
	return v
}

// ParsePercent converts free-text tip percent to a non-negative value, or 0.
// It places no upper bound on the result.
func ParsePercent(text string) float64 {
	v, _ := parseNonNegative(text, 0)
	return v
}

// ParsePeopleCount converts split-count text to a value of at least 1.
func ParsePeopleCount(text string) float64 {
	v, _ := parseNonNegative(text, MinPeopleCount)
	return math.Max(v, MinPeopleCount)
}

// Valid reports whether text is a finite, non-negative decimal number, i.e.
// whether the parsers above will use it rather than their default.
func Valid(text string) bool {
	_, ok := parseNonNegative(text, 0)
	return ok
}

func parseNonNegative(text string, def float64) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return def, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return def, false
	}
	return v, true
}
