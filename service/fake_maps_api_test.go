package services

import (
	"context"
	"fmt"
	"sync"

	"scenic-server/api/googlemaps"
	"scenic-server/models"

	"googlemaps.github.io/maps"
)

// fakeMapsAPI records every call and answers through the configured funcs.
type fakeMapsAPI struct {
	mu sync.Mutex

	directionsFn func(q googlemaps.DirectionsQuery) (*models.DirectionsResponse, error)
	nearbyFn     func(q googlemaps.NearbyQuery) ([]maps.PlacesSearchResult, error)
	detailsFn    func(placeID string) (*maps.PlaceDetailsResult, error)

	directionsCalls []googlemaps.DirectionsQuery
	nearbyCalls     []googlemaps.NearbyQuery
	detailsCalls    []string
}

func (f *fakeMapsAPI) Directions(ctx context.Context, q googlemaps.DirectionsQuery) (*models.DirectionsResponse, error) {
	f.mu.Lock()
	f.directionsCalls = append(f.directionsCalls, q)
	f.mu.Unlock()
	return f.directionsFn(q)
}

func (f *fakeMapsAPI) NearbySearch(ctx context.Context, q googlemaps.NearbyQuery) ([]maps.PlacesSearchResult, error) {
	f.mu.Lock()
	f.nearbyCalls = append(f.nearbyCalls, q)
	f.mu.Unlock()
	if f.nearbyFn == nil {
		return nil, nil
	}
	return f.nearbyFn(q)
}

func (f *fakeMapsAPI) PlaceDetails(ctx context.Context, placeID string) (*maps.PlaceDetailsResult, error) {
	f.mu.Lock()
	f.detailsCalls = append(f.detailsCalls, placeID)
	f.mu.Unlock()
	if f.detailsFn == nil {
		return &maps.PlaceDetailsResult{PlaceID: placeID}, nil
	}
	return f.detailsFn(placeID)
}

var _ googlemaps.MapsAPI = (*fakeMapsAPI)(nil)

// directionsOK builds a one leg OK payload from (40,-74) to (42,-72).
func directionsOK(seconds int) *models.DirectionsResponse {
	return &models.DirectionsResponse{
		Status: "OK",
		Routes: []models.Route{{
			Legs: []models.Leg{{
				Distance: models.TextValue{Text: "100 km", Value: 100000},
				Duration: models.TextValue{Text: fmt.Sprintf("%d s", seconds), Value: seconds},
				Steps: []models.DirectionStep{{
					HTMLInstructions: "Head <b>north</b>",
					Distance:         models.TextValue{Text: "100 km", Value: 100000},
					Duration:         models.TextValue{Text: fmt.Sprintf("%d s", seconds), Value: seconds},
				}},
				StartLocation: models.Location{Lat: 40, Lng: -74},
				EndLocation:   models.Location{Lat: 42, Lng: -72},
			}},
			OverviewPolyline: models.Polyline{Points: fmt.Sprintf("poly-%d", seconds)},
		}},
	}
}

// keywordResults answers every keyword with n results named "<keyword> #i".
func keywordResults(n int) func(q googlemaps.NearbyQuery) ([]maps.PlacesSearchResult, error) {
	return func(q googlemaps.NearbyQuery) ([]maps.PlacesSearchResult, error) {
		results := make([]maps.PlacesSearchResult, n)
		for i := range results {
			results[i] = maps.PlacesSearchResult{
				Name:    fmt.Sprintf("%s #%d", q.Keyword, i),
				PlaceID: fmt.Sprintf("%s-%d", q.Keyword, i),
				Geometry: maps.AddressGeometry{
					Location: maps.LatLng{Lat: 41 + float64(i)/10, Lng: -73},
				},
			}
		}
		return results, nil
	}
}
