package googlemaps

import (
	"context"
	"net/url"
	"strings"

	"scenic-server/models"

	"googlemaps.github.io/maps"
)

// MapsAPI defines the interface for interacting with the maps provider
type MapsAPI interface {
	Directions(ctx context.Context, query DirectionsQuery) (*models.DirectionsResponse, error)
	NearbySearch(ctx context.Context, query NearbyQuery) ([]maps.PlacesSearchResult, error)
	PlaceDetails(ctx context.Context, placeID string) (*maps.PlaceDetailsResult, error)
}

// DirectionsQuery describes one directions lookup. Waypoints are passed
// through as via points and the provider is allowed to reorder them.
type DirectionsQuery struct {
	Origin      string
	Destination string
	Mode        string
	Waypoints   []string
}

// Params builds the provider query string, minus the API key.
func (q DirectionsQuery) Params() url.Values {
	params := url.Values{}
	params.Set("origin", q.Origin)
	params.Set("destination", q.Destination)
	params.Set("mode", q.Mode)

	if len(q.Waypoints) > 0 {
		via := make([]string, len(q.Waypoints))
		for i, wp := range q.Waypoints {
			via[i] = "via:" + wp
		}
		params.Set("waypoints", "optimize:true|"+strings.Join(via, "|"))
	}
	return params
}

// NearbyQuery is a keyword search around a point.
type NearbyQuery struct {
	Location     maps.LatLng
	RadiusMeters uint
	Keyword      string
}

// PlaceDetailsFields is the fixed field mask requested for every place.
var PlaceDetailsFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskFormattedAddress,
	maps.PlaceDetailsFieldMaskPhotos,
	maps.PlaceDetailsFieldMaskRatings,
	maps.PlaceDetailsFieldMaskUserRatingsTotal,
	maps.PlaceDetailsFieldMaskEditorialSummary,
	maps.PlaceDetailsFieldMaskOpeningHours,
	maps.PlaceDetailsFieldMaskWebsite,
	maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
}
