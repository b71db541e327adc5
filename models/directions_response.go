package models

// DirectionsResponse mirrors the provider's directions JSON payload.
type DirectionsResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Routes       []Route `json:"routes"`
}

type Route struct {
	Summary          string   `json:"summary"`
	Legs             []Leg    `json:"legs"`
	OverviewPolyline Polyline `json:"overview_polyline"`
}

type Leg struct {
	Distance      TextValue       `json:"distance"`
	Duration      TextValue       `json:"duration"`
	Steps         []DirectionStep `json:"steps"`
	StartLocation Location        `json:"start_location"`
	EndLocation   Location        `json:"end_location"`
	StartAddress  string          `json:"start_address"`
	EndAddress    string          `json:"end_address"`
}

type DirectionStep struct {
	HTMLInstructions string    `json:"html_instructions"`
	Distance         TextValue `json:"distance"`
	Duration         TextValue `json:"duration"`
	TravelMode       string    `json:"travel_mode"`
}

// TextValue is the provider's {text, value} pair; value is meters or seconds.
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Polyline struct {
	Points string `json:"points"`
}
