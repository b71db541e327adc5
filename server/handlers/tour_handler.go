package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"scenic-server/logger"
	"scenic-server/models"
	services "scenic-server/service"

	"go.uber.org/zap"
)

// TourCreator is the part of the tour service the handler needs.
type TourCreator interface {
	CreateTour(ctx context.Context, req models.TourRequest) (*models.TourResponse, error)
}

type TourHandler struct {
	tourService TourCreator
	logger      *zap.Logger
}

func NewTourHandler(tourService TourCreator, logger *zap.Logger) *TourHandler {
	return &TourHandler{tourService: tourService, logger: logger}
}

// CreateTour handles POST /api/tour
func (h *TourHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx, h.logger)

	req := models.NewTourRequest()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	tour, err := h.tourService.CreateTour(ctx, req)
	if err != nil {
		var notFound *services.RouteNotFoundError
		if errors.As(err, &notFound) {
			log.Info("route not found", zap.String("status", notFound.Status))
			writeError(ctx, w, http.StatusBadRequest, notFound.Error())
			return
		}
		log.Error("error creating tour", zap.Error(err))
		writeError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(ctx, w, http.StatusOK, tour)
}
