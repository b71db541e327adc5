package util

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"scenic-server/models"

	"googlemaps.github.io/maps"
)

// NearbySearchPayload is the provider's nearby-search body.
type NearbySearchPayload struct {
	Status  string                    `json:"status"`
	Results []maps.PlacesSearchResult `json:"results"`
}

// PlaceDetailsPayload is the provider's place-details body.
type PlaceDetailsPayload struct {
	Status string                  `json:"status"`
	Result maps.PlaceDetailsResult `json:"result"`
}

func readJSON(fsys fs.FS, filePath string, out interface{}) error {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %q: %w", filePath, err)
	}
	return nil
}

// ReadDirectionsResponseFromJSON loads a DirectionsResponse from JSON in fsys.
func ReadDirectionsResponseFromJSON(fsys fs.FS, filePath string) (*models.DirectionsResponse, error) {
	var resp models.DirectionsResponse
	if err := readJSON(fsys, filePath, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReadNearbySearchResponseFromJSON loads a nearby-search payload from JSON in fsys.
func ReadNearbySearchResponseFromJSON(fsys fs.FS, filePath string) (*NearbySearchPayload, error) {
	var resp NearbySearchPayload
	if err := readJSON(fsys, filePath, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReadPlaceDetailsResponseFromJSON loads a place-details payload from JSON in fsys.
func ReadPlaceDetailsResponseFromJSON(fsys fs.FS, filePath string) (*PlaceDetailsPayload, error) {
	var resp PlaceDetailsPayload
	if err := readJSON(fsys, filePath, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
