package models

// TourResponse is returned by POST /api/tour. ScenicRoute is only present when
// a scenic alternative was found and fits the duration budget.
type TourResponse struct {
	FastestRoute RouteLeg     `json:"fastest_route"`
	ScenicRoute  *ScenicRoute `json:"scenic_route,omitempty"`
}

// RouteLeg is the simplified shape of the first leg of a provider route.
type RouteLeg struct {
	Distance        string `json:"distance"`
	Duration        string `json:"duration"`
	DurationSeconds int    `json:"duration_seconds"`
	Steps           []Step `json:"steps"`
	Polyline        string `json:"polyline"`
}

type Step struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

type ScenicRoute struct {
	RouteLeg
	ScenicPoints []ScenicPoint `json:"scenic_points"`
}

// ScenicPoint is a point of interest picked near the route midpoint.
type ScenicPoint struct {
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Name             string   `json:"name"`
	Weight           float64  `json:"weight"`
	PlaceID          string   `json:"place_id"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal *int     `json:"user_ratings_total"`
	PhotoReference   *string  `json:"photo_reference"`
	Address          *string  `json:"address"`
	Description      *string  `json:"description"`
	Website          *string  `json:"website"`
	Phone            *string  `json:"phone"`
	OpeningHours     []string `json:"opening_hours"`
}

// ErrorResponse is the body written for 4xx/5xx answers.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
