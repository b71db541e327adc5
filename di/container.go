package di

import (
	"scenic-server/api"
	"scenic-server/api/googlemaps"
	"scenic-server/config"
	"scenic-server/resources"
	"scenic-server/server"
	"scenic-server/server/handlers"
	services "scenic-server/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	Config               *config.Config
	Logger               *zap.Logger
	MapsAPI              googlemaps.MapsAPI
	DirectionsService    *services.DirectionsService
	PlaceDetailsEnricher *services.PlaceDetailsEnricher
	ScenicPointFinder    *services.ScenicPointFinder
	TourService          *services.TourService
	TourHandler          *handlers.TourHandler
	HealthHandler        *handlers.HealthHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	ScenicHttpServer     *server.ScenicHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config, log *zap.Logger) (*Container, error) {
	log.Info("initializing container", zap.String("env", cfg.AppEnv))

	// Outside prod the provider is replaced by canned fixtures
	var mapsApi googlemaps.MapsAPI
	if !cfg.IsProd() {
		mock, err := googlemaps.NewMapsApiClientMock(resources.FS)
		if err != nil {
			return nil, err
		}
		mapsApi = mock
		log.Info("using mock maps api")
	} else {
		httpClient := api.NewHTTPClient(cfg.MapsBaseURL, cfg.RequestTimeout)
		client, err := googlemaps.NewMapsApiClient(httpClient, cfg.MapsAPIKey)
		if err != nil {
			return nil, err
		}
		mapsApi = client
		log.Info("using prod maps api", zap.String("base_url", cfg.MapsBaseURL))
	}

	directionsService := services.NewDirectionsService(mapsApi)
	enricher := services.NewPlaceDetailsEnricher(mapsApi, cfg.LookupTimeout, cfg.FinderConcurrency, log.Named("enricher"))
	finder := services.NewScenicPointFinder(mapsApi, enricher, cfg.LookupTimeout, cfg.FinderConcurrency, log.Named("finder"))
	tourService := services.NewTourService(directionsService, finder, cfg.RequestTimeout, log.Named("tour"))

	tourHandler := handlers.NewTourHandler(tourService, log.Named("handler"))
	healthHandler := handlers.NewHealthHandler()

	muxRouter := mux.NewRouter()
	router := server.NewRouter(tourHandler, healthHandler, muxRouter)
	scenicHttpServer := server.NewScenicHttpServer(cfg.Addr(), router, muxRouter, log.Named("http"))

	return &Container{
		Config:               cfg,
		Logger:               log,
		MapsAPI:              mapsApi,
		DirectionsService:    directionsService,
		PlaceDetailsEnricher: enricher,
		ScenicPointFinder:    finder,
		TourService:          tourService,
		TourHandler:          tourHandler,
		HealthHandler:        healthHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		ScenicHttpServer:     scenicHttpServer,
	}, nil
}
