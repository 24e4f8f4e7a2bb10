// Package rest is the HTTP transport: a chi router over the service layer,
// JSON in and out, with bearer-token authentication on the workout routes.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkau/fittrack/internal/common"
	"github.com/avolkau/fittrack/internal/logging"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondWithJSON(ctx context.Context, w http.ResponseWriter, code int, payload any, logger logging.Logger) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error(ctx, "failed to marshal response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		logger.Error(ctx, "failed to write response", "error", err)
	}
}

func respondWithError(ctx context.Context, w http.ResponseWriter, code int, message string, logger logging.Logger) {
	respondWithJSON(ctx, w, code, errorResponse{Error: message}, logger)
}

// respondWithServiceError translates service-layer error kinds into status
// codes. Anything unrecognized is a 500 with a generic message so internals
// never leak to the client.
func respondWithServiceError(ctx context.Context, w http.ResponseWriter, err error, logger logging.Logger) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		respondWithError(ctx, w, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, common.ErrorDuplicateEmail):
		respondWithError(ctx, w, http.StatusBadRequest, "email is already registered", logger)
	case errors.Is(err, common.ErrorInvalidCredentials):
		respondWithError(ctx, w, http.StatusUnauthorized, "invalid email or password", logger)
	case errors.Is(err, common.ErrInvalidToken):
		respondWithError(ctx, w, http.StatusUnauthorized, "invalid or expired token", logger)
	case errors.Is(err, common.ErrorNotFound):
		respondWithError(ctx, w, http.StatusNotFound, "not found", logger)
	case errors.Is(err, common.ErrorForbidden):
		respondWithError(ctx, w, http.StatusForbidden, "forbidden", logger)
	default:
		logger.Error(ctx, "unhandled service error", "error", err)
		respondWithError(ctx, w, http.StatusInternalServerError, "internal server error", logger)
	}
}
