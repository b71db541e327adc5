package util

import (
	"math"

	"scenic-server/models"

	"googlemaps.github.io/maps"
)

const metersPerDegree = 111320

// Midpoint averages the latitude and longitude of the first and last
// location. It is not path aware; intermediate locations are ignored.
func Midpoint(locations []maps.LatLng) (maps.LatLng, bool) {
	if len(locations) == 0 {
		return maps.LatLng{}, false
	}
	start := locations[0]
	end := locations[len(locations)-1]
	return maps.LatLng{
		Lat: (start.Lat + end.Lat) / 2,
		Lng: (start.Lng + end.Lng) / 2,
	}, true
}

// ApproxDistanceMeters is an equirectangular approximation, good enough for
// logging how far apart two route endpoints are.
func ApproxDistanceMeters(start, end maps.LatLng) float64 {
	latAvg := (start.Lat + end.Lat) / 2 * math.Pi / 180
	dx := (end.Lng - start.Lng) * math.Cos(latAvg) * metersPerDegree
	dy := (end.Lat - start.Lat) * metersPerDegree
	return math.Sqrt(dx*dx + dy*dy)
}

// ToLatLng converts a provider location.
func ToLatLng(l models.Location) maps.LatLng {
	return maps.LatLng{Lat: l.Lat, Lng: l.Lng}
}

// FormatLatLng renders "lat,lng" with the shortest exact decimal form.
func FormatLatLng(l maps.LatLng) string {
	return l.String()
}
