package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// TourRoutes are the handlers behind the tour API.
type TourRoutes interface {
	CreateTour(w http.ResponseWriter, r *http.Request)
}

// HealthRoutes answers liveness probes.
type HealthRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	tourHandler   TourRoutes
	healthHandler HealthRoutes
	router        *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	tourHandler TourRoutes,
	healthHandler HealthRoutes,
	router *mux.Router) *Router {
	return &Router{
		tourHandler:   tourHandler,
		healthHandler: healthHandler,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects a JSON TourRequest body
	r.router.HandleFunc("/api/tour", r.tourHandler.CreateTour).Methods(http.MethodPost)

	r.router.HandleFunc("/ping", r.healthHandler.Ping).Methods(http.MethodGet)
}
