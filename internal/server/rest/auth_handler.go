package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avolkau/fittrack/internal/logging"
	"github.com/avolkau/fittrack/internal/server/services"
)

// AuthProvider is the slice of the auth service the handlers need.
type AuthProvider interface {
	Register(ctx context.Context, p services.RegisterParams) (*services.AuthResult, error)
	Login(ctx context.Context, p services.LoginParams) (*services.AuthResult, error)
}

// AuthHandler serves the registration and login endpoints.
type AuthHandler struct {
	service AuthProvider
	logger  logging.Logger
}

func NewAuthHandler(service AuthProvider, logger logging.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var params services.RegisterParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondWithError(r.Context(), w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	res, err := h.service.Register(r.Context(), params)
	if err != nil {
		respondWithServiceError(r.Context(), w, err, h.logger)
		return
	}

	h.logger.Info(r.Context(), "user registered", "user_id", res.UserID)
	respondWithJSON(r.Context(), w, http.StatusCreated, toAuthResponse(res), h.logger)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var params services.LoginParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondWithError(r.Context(), w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	res, err := h.service.Login(r.Context(), params)
	if err != nil {
		respondWithServiceError(r.Context(), w, err, h.logger)
		return
	}

	respondWithJSON(r.Context(), w, http.StatusOK, toAuthResponse(res), h.logger)
}
