package googlemaps

import (
	"context"
	"fmt"
	"io/fs"

	"scenic-server/config"
	"scenic-server/models"
	"scenic-server/util"

	"googlemaps.github.io/maps"
)

// MapsApiClientMock serves canned provider payloads, for running the server
// without a real API key behind it.
type MapsApiClientMock struct {
	directions *models.DirectionsResponse
	nearby     *util.NearbySearchPayload
	details    *util.PlaceDetailsPayload
}

// NewMapsApiClientMock loads the fixtures from fsys once.
func NewMapsApiClientMock(fsys fs.FS) (*MapsApiClientMock, error) {
	directions, err := util.ReadDirectionsResponseFromJSON(fsys, config.DIRECTIONS_RESPONSE_RESOURCE)
	if err != nil {
		return nil, err
	}
	nearby, err := util.ReadNearbySearchResponseFromJSON(fsys, config.NEARBY_SEARCH_RESPONSE_RESOURCE)
	if err != nil {
		return nil, err
	}
	details, err := util.ReadPlaceDetailsResponseFromJSON(fsys, config.PLACE_DETAILS_RESPONSE_RESOURCE)
	if err != nil {
		return nil, err
	}

	return &MapsApiClientMock{
		directions: directions,
		nearby:     nearby,
		details:    details,
	}, nil
}

// Directions returns the canned directions payload.
func (c *MapsApiClientMock) Directions(ctx context.Context, query DirectionsQuery) (*models.DirectionsResponse, error) {
	resp := *c.directions
	return &resp, nil
}

// NearbySearch returns the canned results for every keyword.
func (c *MapsApiClientMock) NearbySearch(ctx context.Context, query NearbyQuery) ([]maps.PlacesSearchResult, error) {
	if c.nearby.Status != "OK" && c.nearby.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("maps: %s", c.nearby.Status)
	}
	results := make([]maps.PlacesSearchResult, len(c.nearby.Results))
	copy(results, c.nearby.Results)
	return results, nil
}

// PlaceDetails returns the canned details, tagged with the requested id.
func (c *MapsApiClientMock) PlaceDetails(ctx context.Context, placeID string) (*maps.PlaceDetailsResult, error) {
	if c.details.Status != "OK" {
		return nil, fmt.Errorf("maps: %s", c.details.Status)
	}
	result := c.details.Result
	result.PlaceID = placeID
	return &result, nil
}

var _ MapsAPI = (*MapsApiClientMock)(nil)
