package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"scenic-server/logger"
	"scenic-server/models"

	"go.uber.org/zap"
)

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromContext(ctx, nil).Error("error encoding response", zap.Error(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, detail string) {
	writeJSON(ctx, w, status, models.ErrorResponse{Detail: detail})
}
