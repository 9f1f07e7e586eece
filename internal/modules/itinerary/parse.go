// README: Model output parsing and shape validation.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

type rawActivity struct {
	Time        *string `json:"time"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

type rawDay struct {
	Day        *int           `json:"day"`
	Theme      *string        `json:"theme"`
	Activities *[]rawActivity `json:"activities"`
}

// ParseItinerary decodes the raw model reply into the itinerary sequence.
// Markdown code fences around the JSON are tolerated and stripped; anything
// else that does not decode, or decodes to the wrong shape, is a terminal
// parse error naming the offending day.
func ParseItinerary(raw string) ([]DayPlan, error) {
	cleaned := stripCodeFence(raw)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &top); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	rawItinerary, ok := top["itinerary"]
	if !ok {
		return nil, fmt.Errorf("response is missing the itinerary field")
	}

	var days []rawDay
	if err := json.Unmarshal(rawItinerary, &days); err != nil {
		return nil, fmt.Errorf("itinerary field is not an array of days: %w", err)
	}

	plans := make([]DayPlan, 0, len(days))
	for i, d := range days {
		if d.Day == nil || d.Theme == nil || d.Activities == nil {
			return nil, fmt.Errorf("itinerary day %d is missing one of day, theme, activities", i+1)
		}
		plan := DayPlan{
			Day:        *d.Day,
			Theme:      *d.Theme,
			Activities: make([]Activity, 0, len(*d.Activities)),
		}
		for j, a := range *d.Activities {
			if a.Time == nil || a.Description == nil || a.Location == nil {
				return nil, fmt.Errorf("day %d activity %d is missing one of time, description, location", i+1, j+1)
			}
			plan.Activities = append(plan.Activities, Activity{
				Time:        *a.Time,
				Description: *a.Description,
				Location:    *a.Location,
			})
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// stripCodeFence removes markdown code block delimiters if present
// (e.g. ```json ... ```).
func stripCodeFence(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
