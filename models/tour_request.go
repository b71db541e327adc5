package models

import (
	"errors"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

const DEFAULT_TRAVEL_MODE = "driving"
const DEFAULT_ETA_TOLERANCE_MINUTES = 30

var ErrMissingOrigin = errors.New("origin is required")
var ErrMissingDestination = errors.New("destination is required")

// travelModes are the modes the directions provider understands.
var travelModes = map[string]struct{}{
	string(maps.TravelModeDriving):   {},
	string(maps.TravelModeWalking):   {},
	string(maps.TravelModeBicycling): {},
	string(maps.TravelModeTransit):   {},
}

// TourRequest is the body of POST /api/tour.
type TourRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
	Scenic      bool   `json:"scenic"`
	// EtaTolerance is accepted and echoed in logs but does not take part in
	// the scenic duration budget.
	EtaTolerance int      `json:"eta_tolerance"`
	Waypoints    []string `json:"waypoints"`
}

// NewTourRequest returns a request pre-populated with defaults, ready to be
// decoded into so that absent JSON keys keep their default.
func NewTourRequest() TourRequest {
	return TourRequest{
		Mode:         DEFAULT_TRAVEL_MODE,
		EtaTolerance: DEFAULT_ETA_TOLERANCE_MINUTES,
		Waypoints:    []string{},
	}
}

// ApplyDefaults fills values that were sent explicitly empty.
func (r *TourRequest) ApplyDefaults() {
	if strings.TrimSpace(r.Mode) == "" {
		r.Mode = DEFAULT_TRAVEL_MODE
	}
	if r.Waypoints == nil {
		r.Waypoints = []string{}
	}
}

func (r *TourRequest) Validate() error {
	if strings.TrimSpace(r.Origin) == "" {
		return ErrMissingOrigin
	}
	if strings.TrimSpace(r.Destination) == "" {
		return ErrMissingDestination
	}
	if _, ok := travelModes[r.Mode]; !ok {
		return fmt.Errorf("unsupported travel mode %q", r.Mode)
	}
	return nil
}
