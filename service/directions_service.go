package services

import (
	"context"
	"errors"

	"scenic-server/api/googlemaps"
	"scenic-server/models"
	"scenic-server/util"

	"googlemaps.github.io/maps"
)

var errNoRouteLegs = errors.New("directions response contained no route legs")

// RouteResult is the first leg of the first route, plus the start of every
// leg and the final end location.
type RouteResult struct {
	Leg       models.RouteLeg
	Locations []maps.LatLng
}

type DirectionsService struct {
	mapsApi googlemaps.MapsAPI
}

// NewDirectionsService constructs a DirectionsService over the maps provider.
func NewDirectionsService(mapsApi googlemaps.MapsAPI) *DirectionsService {
	return &DirectionsService{mapsApi: mapsApi}
}

// Route looks up directions for query.
func (ds *DirectionsService) Route(ctx context.Context, query googlemaps.DirectionsQuery) (*RouteResult, error) {
	resp, err := ds.mapsApi.Directions(ctx, query)
	if err != nil {
		return nil, &ProviderUnavailableError{Op: "directions", Err: err}
	}
	if resp.Status != "OK" {
		return nil, &RouteNotFoundError{Status: resp.Status}
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, errNoRouteLegs
	}

	route := resp.Routes[0]
	locations := make([]maps.LatLng, 0, len(route.Legs)+1)
	for _, leg := range route.Legs {
		locations = append(locations, util.ToLatLng(leg.StartLocation))
	}
	locations = append(locations, util.ToLatLng(route.Legs[len(route.Legs)-1].EndLocation))

	return &RouteResult{
		Leg:       toRouteLeg(route.Legs[0], route.OverviewPolyline.Points),
		Locations: locations,
	}, nil
}

func toRouteLeg(leg models.Leg, polyline string) models.RouteLeg {
	steps := make([]models.Step, len(leg.Steps))
	for i, s := range leg.Steps {
		steps[i] = models.Step{
			Instruction: s.HTMLInstructions,
			Distance:    s.Distance.Text,
			Duration:    s.Duration.Text,
		}
	}

	return models.RouteLeg{
		Distance:        leg.Distance.Text,
		Duration:        leg.Duration.Text,
		DurationSeconds: leg.Duration.Value,
		Steps:           steps,
		Polyline:        polyline,
	}
}
