// README: Prompt template for itinerary generation.
package itinerary

import "fmt"

// BuildPrompt renders the instruction string sent to the completion provider.
// Deterministic: the same destination and day count always produce the same
// prompt. The embedded schema mirrors the DayPlan/Activity model so the reply
// can be decoded without transformation.
func BuildPrompt(destination string, durationDays int) string {
	return fmt.Sprintf(`Create a detailed %d-day travel itinerary for a trip to %s.

Respond with a JSON object exactly matching this schema:
{
  "itinerary": [
    {
      "day": 1,
      "theme": "short theme for the day",
      "activities": [
        {"time": "Morning", "description": "what to do", "location": "where"},
        {"time": "Afternoon", "description": "what to do", "location": "where"},
        {"time": "Evening", "description": "what to do", "location": "where"}
      ]
    }
  ]
}

Rules:
- The itinerary array must contain exactly %d entries, one per day, numbered from 1.
- Every day has exactly 3 activities: Morning, Afternoon, Evening.
- Respond with JSON only. No surrounding prose, no markdown code fences.`,
		durationDays, destination, durationDays)
}
