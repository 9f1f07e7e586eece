// README: Destination geocoding via Google Maps.
package geo

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GeocodeService resolves free-form destinations with the Google Maps
// Geocoding API.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Resolve returns the canonical formatted address for a destination, e.g.
// "paris" -> "Paris, France". Callers treat failures as non-fatal.
func (s *GeocodeService) Resolve(ctx context.Context, destination string) (string, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: destination})
	if err != nil {
		return "", fmt.Errorf("maps api error: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no geocoding result for %q", destination)
	}
	return results[0].FormattedAddress, nil
}
