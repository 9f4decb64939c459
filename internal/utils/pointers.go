package utils

import (
	"math"
	"strings"
)

func StringPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func RoundFloat64(f float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(f*factor) / factor
}

// ContainsFold reports whether any element of slice equals s, ignoring case
// and surrounding whitespace.
func ContainsFold(slice []string, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	for _, v := range slice {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}

func ContainsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
