package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"scenic-server/api"
	"scenic-server/config"
	"scenic-server/models"

	"googlemaps.github.io/maps"
)

// MapsApiClient talks to the real provider. Directions go through the plain
// JSON HTTPClient so the provider status and display texts survive intact;
// places go through the maps SDK.
type MapsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	places          *maps.Client
	apiKey          string
}

// NewMapsApiClient creates a new instance of MapsApiClient
func NewMapsApiClient(httpClient *api.HTTPClient, apiKey string) (*MapsApiClient, error) {
	places, err := maps.NewClient(
		maps.WithAPIKey(apiKey),
		maps.WithBaseURL(httpClient.BaseURL),
		maps.WithHTTPClient(httpClient.HTTPClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &MapsApiClient{
		HTTPClient: httpClient,
		places:     places,
		apiKey:     apiKey,
	}, nil
}

// Directions issues a directions lookup. A non OK provider status is not an
// error here; callers inspect Status.
func (c *MapsApiClient) Directions(ctx context.Context, query DirectionsQuery) (*models.DirectionsResponse, error) {
	params := query.Params()
	params.Set("key", c.apiKey)

	var response models.DirectionsResponse
	if err := c.Get(ctx, config.MAPS_DIRECTIONS_PATH, params, &response); err != nil {
		return nil, c.redact(err)
	}
	return &response, nil
}

// NearbySearch returns the provider's results in its own relevance order.
func (c *MapsApiClient) NearbySearch(ctx context.Context, query NearbyQuery) ([]maps.PlacesSearchResult, error) {
	location := query.Location
	resp, err := c.places.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &location,
		Radius:   query.RadiusMeters,
		Keyword:  query.Keyword,
	})
	if err != nil {
		return nil, c.redact(err)
	}
	return resp.Results, nil
}

// PlaceDetails fetches the fixed PlaceDetailsFields for placeID.
func (c *MapsApiClient) PlaceDetails(ctx context.Context, placeID string) (*maps.PlaceDetailsResult, error) {
	result, err := c.places.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  PlaceDetailsFields,
	})
	if err != nil {
		return nil, c.redact(err)
	}
	return &result, nil
}

// redact strips the API key from transport errors, whose message carries the
// full request URL.
func (c *MapsApiClient) redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = &url.Error{Op: uerr.Op, URL: redactURL(uerr.URL), Err: uerr.Err}
	}
	if c.apiKey != "" && strings.Contains(err.Error(), c.apiKey) {
		return errors.New(strings.ReplaceAll(err.Error(), c.apiKey, redactedKey))
	}
	return err
}

const redactedKey = "REDACTED"

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", redactedKey)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

var _ MapsAPI = (*MapsApiClient)(nil)
