package services

import (
	"context"
	"strconv"
	"time"

	"scenic-server/api/googlemaps"
	"scenic-server/config"
	"scenic-server/logger"
	"scenic-server/models"
	"scenic-server/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"googlemaps.github.io/maps"
)

// ScenicPointFinder searches for points of interest around the midpoint of a
// route. The result is the first SCENIC_MAX_POINTS points in keyword
// iteration order, not a ranking.
type ScenicPointFinder struct {
	mapsApi       googlemaps.MapsAPI
	enricher      *PlaceDetailsEnricher
	categories    []models.ScenicCategory
	lookupTimeout time.Duration
	concurrency   int
	logger        *zap.Logger
}

// NewScenicPointFinder walks models.SimpleScenicCategories.
func NewScenicPointFinder(
	mapsApi googlemaps.MapsAPI,
	enricher *PlaceDetailsEnricher,
	lookupTimeout time.Duration,
	concurrency int,
	logger *zap.Logger) *ScenicPointFinder {

	if concurrency < 1 {
		concurrency = 1
	}
	return &ScenicPointFinder{
		mapsApi:       mapsApi,
		enricher:      enricher,
		categories:    models.SimpleScenicCategories,
		lookupTimeout: lookupTimeout,
		concurrency:   concurrency,
		logger:        logger,
	}
}

// Find returns up to SCENIC_MAX_POINTS enriched points near the midpoint of
// the first and last location. A keyword whose search fails is skipped.
func (f *ScenicPointFinder) Find(ctx context.Context, locations []maps.LatLng) []models.ScenicPoint {
	log := logger.FromContext(ctx, f.logger)

	mid, ok := util.Midpoint(locations)
	if !ok {
		return nil
	}
	log.Info("searching for scenic points",
		zap.String("midpoint", util.FormatLatLng(mid)),
		zap.Float64("endpoint_span_m", util.ApproxDistanceMeters(locations[0], locations[len(locations)-1])),
	)

	keywords := models.FlattenKeywords(f.categories)
	// one slot per keyword keeps accumulation order independent of completion order
	slots := make([][]models.ScenicPoint, len(keywords))

	var g errgroup.Group
	g.SetLimit(f.concurrency)
	for i, kw := range keywords {
		i, kw := i, kw
		g.Go(func() error {
			slots[i] = f.search(ctx, mid, kw)
			return nil
		})
	}
	_ = g.Wait()

	var points []models.ScenicPoint
	for _, slot := range slots {
		points = append(points, slot...)
	}
	if len(points) > config.SCENIC_MAX_POINTS {
		points = points[:config.SCENIC_MAX_POINTS]
	}
	if len(points) == 0 {
		return nil
	}

	return f.enricher.EnrichAll(ctx, points)
}

func (f *ScenicPointFinder) search(ctx context.Context, mid maps.LatLng, kw models.ScenicKeyword) []models.ScenicPoint {
	lookupCtx, cancel := context.WithTimeout(ctx, f.lookupTimeout)
	defer cancel()

	results, err := f.mapsApi.NearbySearch(lookupCtx, googlemaps.NearbyQuery{
		Location:     mid,
		RadiusMeters: config.SCENIC_SEARCH_RADIUS_METERS,
		Keyword:      kw.Keyword,
	})
	if err != nil {
		logger.FromContext(ctx, f.logger).Warn("error fetching points for keyword",
			zap.String("keyword", kw.Keyword),
			zap.Error(err),
		)
		return nil
	}

	if len(results) > config.SCENIC_RESULTS_PER_KEYWORD {
		results = results[:config.SCENIC_RESULTS_PER_KEYWORD]
	}
	points := make([]models.ScenicPoint, len(results))
	for i, r := range results {
		points[i] = toScenicPoint(r, kw.Category)
	}
	return points
}

func toScenicPoint(r maps.PlacesSearchResult, category models.ScenicCategory) models.ScenicPoint {
	p := models.ScenicPoint{
		Location:     util.FormatLatLng(r.Geometry.Location),
		Type:         category.Type,
		Name:         r.Name,
		Weight:       category.Weight,
		PlaceID:      r.PlaceID,
		OpeningHours: []string{},
	}
	if r.Rating != 0 {
		// round trip through the shortest float32 text so 4.7 stays 4.7
		rating, _ := strconv.ParseFloat(strconv.FormatFloat(float64(r.Rating), 'f', -1, 32), 64)
		p.Rating = &rating
	}
	if r.UserRatingsTotal != 0 {
		total := r.UserRatingsTotal
		p.UserRatingsTotal = &total
	}
	if len(r.Photos) > 0 && r.Photos[0].PhotoReference != "" {
		ref := r.Photos[0].PhotoReference
		p.PhotoReference = &ref
	}
	return p
}
