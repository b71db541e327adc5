package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"scenic-server/api/googlemaps"
	"scenic-server/config"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

func newTestFinder(fake *fakeMapsAPI, concurrency int) *ScenicPointFinder {
	log := zap.NewNop()
	enricher := NewPlaceDetailsEnricher(fake, time.Second, concurrency, log)
	return NewScenicPointFinder(fake, enricher, time.Second, concurrency, log)
}

var routeEnds = []maps.LatLng{{Lat: 40, Lng: -74}, {Lat: 42, Lng: -72}}

func TestFind_SearchesAroundMidpoint(t *testing.T) {
	fake := &fakeMapsAPI{nearbyFn: keywordResults(0)}

	points := newTestFinder(fake, 1).Find(context.Background(), routeEnds)
	assert.Empty(t, points)

	require.Len(t, fake.nearbyCalls, 6)
	keywords := make([]string, len(fake.nearbyCalls))
	for i, call := range fake.nearbyCalls {
		assert.Equal(t, maps.LatLng{Lat: 41, Lng: -73}, call.Location)
		assert.Equal(t, uint(config.SCENIC_SEARCH_RADIUS_METERS), call.RadiusMeters)
		keywords[i] = call.Keyword
	}
	assert.Equal(t, []string{"tourist attraction", "landmark", "point of interest", "park", "lake", "scenic view"}, keywords)
}

func TestFind_NoLocations(t *testing.T) {
	fake := &fakeMapsAPI{nearbyFn: keywordResults(3)}

	assert.Nil(t, newTestFinder(fake, 1).Find(context.Background(), nil))
	assert.Empty(t, fake.nearbyCalls)
}

func TestFind_TakesThreePerKeywordThenFive(t *testing.T) {
	fake := &fakeMapsAPI{nearbyFn: keywordResults(10)}

	points := newTestFinder(fake, 1).Find(context.Background(), routeEnds)

	names := make([]string, len(points))
	for i, p := range points {
		names[i] = p.Name
	}
	assert.Equal(t, []string{
		"tourist attraction #0", "tourist attraction #1", "tourist attraction #2",
		"landmark #0", "landmark #1",
	}, names)
	assert.Equal(t, "attraction", points[0].Type)
	assert.Equal(t, 1.0, points[0].Weight)
}

// Later keywords answer first; the accumulated order must still follow the
// keyword table, so parallel and sequential runs agree.
func TestFind_OrderIndependentOfCompletion(t *testing.T) {
	delays := map[string]time.Duration{
		"tourist attraction": 40 * time.Millisecond,
		"landmark":           20 * time.Millisecond,
	}
	base := keywordResults(1)
	nearby := func(q googlemaps.NearbyQuery) ([]maps.PlacesSearchResult, error) {
		time.Sleep(delays[q.Keyword])
		return base(q)
	}

	sequential := newTestFinder(&fakeMapsAPI{nearbyFn: nearby}, 1).Find(context.Background(), routeEnds)
	parallel := newTestFinder(&fakeMapsAPI{nearbyFn: nearby}, 6).Find(context.Background(), routeEnds)

	if diff := pretty.Diff(sequential, parallel); len(diff) > 0 {
		t.Errorf("parallel order differs from sequential:\n%s", diff)
	}
	require.Len(t, parallel, 5)
	assert.Equal(t, "tourist attraction #0", parallel[0].Name)
	assert.Equal(t, "park #0", parallel[3].Name)
	assert.Equal(t, "nature", parallel[3].Type)
}

func TestFind_FailedKeywordIsSkipped(t *testing.T) {
	base := keywordResults(1)
	fake := &fakeMapsAPI{nearbyFn: func(q googlemaps.NearbyQuery) ([]maps.PlacesSearchResult, error) {
		if q.Keyword == "landmark" {
			return nil, errors.New("maps: OVER_QUERY_LIMIT")
		}
		return base(q)
	}}

	points := newTestFinder(fake, 2).Find(context.Background(), routeEnds)

	names := make([]string, len(points))
	for i, p := range points {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"tourist attraction #0", "point of interest #0", "park #0", "lake #0", "scenic view #0"}, names)
}

func TestFind_PointFields(t *testing.T) {
	fake := &fakeMapsAPI{
		nearbyFn: func(q googlemaps.NearbyQuery) ([]maps.PlacesSearchResult, error) {
			if q.Keyword != "tourist attraction" {
				return nil, nil
			}
			return []maps.PlacesSearchResult{
				{
					Name:             "Gillette Castle",
					PlaceID:          "ChIJgillette",
					Rating:           4.7,
					UserRatingsTotal: 5120,
					Geometry:         maps.AddressGeometry{Location: maps.LatLng{Lat: 41.4234, Lng: -72.4268}},
					Photos:           []maps.Photo{{PhotoReference: "photo-gillette"}},
				},
				{
					Name:     "Unrated",
					PlaceID:  "ChIJunrated",
					Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 41.5, Lng: -72.5}},
				},
			}, nil
		},
		detailsFn: func(placeID string) (*maps.PlaceDetailsResult, error) {
			if placeID == "ChIJunrated" {
				return nil, errors.New("maps: NOT_FOUND")
			}
			return &maps.PlaceDetailsResult{
				PlaceID:              placeID,
				FormattedAddress:     "67 River Rd, East Haddam, CT 06423, USA",
				FormattedPhoneNumber: "(860) 526-2336",
				EditorialSummary:     &maps.PlaceEditorialSummary{Overview: "Castle on a hill."},
				OpeningHours:         &maps.OpeningHours{WeekdayText: []string{"Monday: Closed"}},
			}, nil
		},
	}

	points := newTestFinder(fake, 2).Find(context.Background(), routeEnds)
	require.Len(t, points, 2)

	castle := points[0]
	assert.Equal(t, "41.4234,-72.4268", castle.Location)
	assert.Equal(t, "ChIJgillette", castle.PlaceID)
	require.NotNil(t, castle.Rating)
	assert.Equal(t, 4.7, *castle.Rating)
	require.NotNil(t, castle.UserRatingsTotal)
	assert.Equal(t, 5120, *castle.UserRatingsTotal)
	require.NotNil(t, castle.PhotoReference)
	assert.Equal(t, "photo-gillette", *castle.PhotoReference)
	require.NotNil(t, castle.Address)
	assert.Equal(t, "67 River Rd, East Haddam, CT 06423, USA", *castle.Address)
	require.NotNil(t, castle.Description)
	assert.Equal(t, "Castle on a hill.", *castle.Description)
	require.NotNil(t, castle.Phone)
	assert.Equal(t, "(860) 526-2336", *castle.Phone)
	assert.Nil(t, castle.Website)
	assert.Equal(t, []string{"Monday: Closed"}, castle.OpeningHours)

	unrated := points[1]
	assert.Nil(t, unrated.Rating)
	assert.Nil(t, unrated.UserRatingsTotal)
	assert.Nil(t, unrated.PhotoReference)
	assert.Nil(t, unrated.Address)
	assert.Nil(t, unrated.Description)
	assert.Nil(t, unrated.Website)
	assert.Nil(t, unrated.Phone)
	assert.NotNil(t, unrated.OpeningHours)
	assert.Empty(t, unrated.OpeningHours)
}

func TestFind_OnlySurvivorsAreEnriched(t *testing.T) {
	fake := &fakeMapsAPI{nearbyFn: keywordResults(3)}

	points := newTestFinder(fake, 4).Find(context.Background(), routeEnds)
	require.Len(t, points, 5)

	enriched := map[string]bool{}
	for _, id := range fake.detailsCalls {
		enriched[id] = true
	}
	assert.Len(t, fake.detailsCalls, 5)
	for _, p := range points {
		assert.True(t, enriched[p.PlaceID], fmt.Sprintf("%s was not enriched", p.PlaceID))
	}
}
