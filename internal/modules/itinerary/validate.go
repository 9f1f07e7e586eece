// README: Creation request validation (pure, no I/O).
package itinerary

import (
	"math"
	"strings"
)

// Bounds for duration_days.
const (
	MinDurationDays = 1
	MaxDurationDays = 14
)

// MinDestinationLen is the minimum trimmed destination length.
const MinDestinationLen = 3

// ValidateCreate checks a decoded creation request body and returns every
// violation found; an empty slice means the request is valid. All rules are
// checked independently so a single response lists them all.
func ValidateCreate(body map[string]any) []string {
	var violations []string

	if dest, ok := body["destination"]; !ok {
		violations = append(violations, "destination is required")
	} else if s, isString := dest.(string); !isString {
		violations = append(violations, "destination must be a string")
	} else if len(strings.TrimSpace(s)) < MinDestinationLen {
		violations = append(violations, "destination must be at least 3 characters long")
	}

	if days, ok := body["durationDays"]; !ok {
		violations = append(violations, "durationDays is required")
	} else if n, isNumber := days.(float64); !isNumber || math.IsNaN(n) {
		violations = append(violations, "durationDays must be a number")
	} else if n < MinDurationDays || n > MaxDurationDays {
		violations = append(violations, "durationDays must be between 1 and 14")
	}

	return violations
}
