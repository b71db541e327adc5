package services

import (
	"context"
	"time"

	"scenic-server/api/googlemaps"
	"scenic-server/logger"
	"scenic-server/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PlaceDetails holds the optional attributes attached to a scenic point.
// The zero value means nothing could be fetched.
type PlaceDetails struct {
	Address      *string
	Description  *string
	Website      *string
	Phone        *string
	OpeningHours []string
}

type PlaceDetailsEnricher struct {
	mapsApi       googlemaps.MapsAPI
	lookupTimeout time.Duration
	concurrency   int
	logger        *zap.Logger
}

// NewPlaceDetailsEnricher constructs an enricher. concurrency caps the number
// of details lookups in flight; 1 makes them strictly sequential.
func NewPlaceDetailsEnricher(
	mapsApi googlemaps.MapsAPI,
	lookupTimeout time.Duration,
	concurrency int,
	logger *zap.Logger) *PlaceDetailsEnricher {

	if concurrency < 1 {
		concurrency = 1
	}
	return &PlaceDetailsEnricher{
		mapsApi:       mapsApi,
		lookupTimeout: lookupTimeout,
		concurrency:   concurrency,
		logger:        logger,
	}
}

// Enrich fetches details for placeID. Failures are logged and yield empty details.
func (e *PlaceDetailsEnricher) Enrich(ctx context.Context, placeID string) PlaceDetails {
	lookupCtx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	defer cancel()

	result, err := e.mapsApi.PlaceDetails(lookupCtx, placeID)
	if err != nil {
		logger.FromContext(ctx, e.logger).Warn("error fetching place details",
			zap.String("place_id", placeID),
			zap.Error(err),
		)
		return PlaceDetails{}
	}

	details := PlaceDetails{
		Address: optionalString(result.FormattedAddress),
		Website: optionalString(result.Website),
		Phone:   optionalString(result.FormattedPhoneNumber),
	}
	if result.EditorialSummary != nil {
		details.Description = optionalString(result.EditorialSummary.Overview)
	}
	if result.OpeningHours != nil {
		details.OpeningHours = result.OpeningHours.WeekdayText
	}
	return details
}

// EnrichAll returns a copy of points with their details filled in, in the same order.
func (e *PlaceDetailsEnricher) EnrichAll(ctx context.Context, points []models.ScenicPoint) []models.ScenicPoint {
	details := make([]PlaceDetails, len(points))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, p := range points {
		i, p := i, p
		g.Go(func() error {
			details[i] = e.Enrich(ctx, p.PlaceID)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.ScenicPoint, len(points))
	for i, p := range points {
		out[i] = withDetails(p, details[i])
	}
	return out
}

func withDetails(p models.ScenicPoint, d PlaceDetails) models.ScenicPoint {
	p.Address = d.Address
	p.Description = d.Description
	p.Website = d.Website
	p.Phone = d.Phone
	p.OpeningHours = d.OpeningHours
	if p.OpeningHours == nil {
		p.OpeningHours = []string{}
	}
	return p
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
