package services

import (
	"context"
	"errors"
	"time"

	"scenic-server/api/googlemaps"
	"scenic-server/config"
	"scenic-server/logger"
	"scenic-server/models"

	"go.uber.org/zap"
)

// TourService answers tour requests: the fastest route, and optionally a
// scenic detour through nearby points of interest.
type TourService struct {
	directions     *DirectionsService
	finder         *ScenicPointFinder
	requestTimeout time.Duration
	logger         *zap.Logger
}

func NewTourService(
	directions *DirectionsService,
	finder *ScenicPointFinder,
	requestTimeout time.Duration,
	logger *zap.Logger) *TourService {

	return &TourService{
		directions:     directions,
		finder:         finder,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// CreateTour computes the tour for req. A *RouteNotFoundError means the
// fastest route could not be built; any other error is a server failure.
func (ts *TourService) CreateTour(ctx context.Context, req models.TourRequest) (*models.TourResponse, error) {
	if ts.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ts.requestTimeout)
		defer cancel()
	}
	log := logger.FromContext(ctx, ts.logger)
	log.Info("creating tour",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.String("mode", req.Mode),
		zap.Bool("scenic", req.Scenic),
		zap.Int("eta_tolerance", req.EtaTolerance),
		zap.Int("waypoints", len(req.Waypoints)),
	)

	query := googlemaps.DirectionsQuery{
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        req.Mode,
		Waypoints:   req.Waypoints,
	}
	fastest, err := ts.directions.Route(ctx, query)
	if err != nil {
		return nil, err
	}

	resp := &models.TourResponse{FastestRoute: fastest.Leg}
	if !req.Scenic {
		return resp, nil
	}

	points := ts.finder.Find(ctx, fastest.Locations)
	if len(points) == 0 {
		log.Info("no scenic points found, returning fastest route only")
		return resp, nil
	}

	scenicQuery := query
	scenicQuery.Waypoints = make([]string, 0, len(req.Waypoints)+len(points))
	scenicQuery.Waypoints = append(scenicQuery.Waypoints, req.Waypoints...)
	for _, p := range points {
		scenicQuery.Waypoints = append(scenicQuery.Waypoints, p.Location)
	}

	scenic, err := ts.directions.Route(ctx, scenicQuery)
	if err != nil {
		var notFound *RouteNotFoundError
		var unavailable *ProviderUnavailableError
		switch {
		case errors.As(err, &notFound):
			log.Warn("scenic route not found", zap.String("status", notFound.Status))
			return resp, nil
		case errors.As(err, &unavailable) && isHTTPStatusFailure(unavailable.Err):
			log.Warn("scenic route request rejected", zap.Error(err))
			return resp, nil
		default:
			return nil, err
		}
	}

	if !withinDurationBudget(fastest.Leg.DurationSeconds, scenic.Leg.DurationSeconds) {
		log.Info("scenic route exceeds duration budget",
			zap.Int("fastest_seconds", fastest.Leg.DurationSeconds),
			zap.Int("scenic_seconds", scenic.Leg.DurationSeconds),
		)
		return resp, nil
	}

	resp.ScenicRoute = &models.ScenicRoute{
		RouteLeg:     scenic.Leg,
		ScenicPoints: points,
	}
	return resp, nil
}

// withinDurationBudget reports whether a scenic route of scenicSeconds may be
// offered next to a fastest route of fastestSeconds. The bound is inclusive.
func withinDurationBudget(fastestSeconds, scenicSeconds int) bool {
	return scenicSeconds <= fastestSeconds*config.SCENIC_MAX_DURATION_FACTOR
}
