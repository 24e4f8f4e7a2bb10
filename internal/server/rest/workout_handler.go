package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avolkau/fittrack/internal/logging"
	"github.com/avolkau/fittrack/internal/server/models"
	"github.com/avolkau/fittrack/internal/server/services"
)

// WorkoutProvider is the slice of the workout service the handlers need.
type WorkoutProvider interface {
	GetByID(ctx context.Context, workoutID, callerID int64) (*models.Workout, error)
	List(ctx context.Context, callerID int64) ([]*models.WorkoutSummary, error)
	Create(ctx context.Context, p services.WorkoutParams, callerID int64) (*models.Workout, error)
	Update(ctx context.Context, workoutID int64, p services.WorkoutParams, callerID int64) (*models.Workout, error)
	Delete(ctx context.Context, workoutID, callerID int64) error
}

// WorkoutHandler serves the workout CRUD endpoints. All routes sit behind
// Authenticator, so the caller id is always present in the context.
type WorkoutHandler struct {
	service WorkoutProvider
	logger  logging.Logger
}

func NewWorkoutHandler(service WorkoutProvider, logger logging.Logger) *WorkoutHandler {
	return &WorkoutHandler{service: service, logger: logger}
}

func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserID(r.Context())
	if !ok {
		respondWithError(r.Context(), w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	summaries, err := h.service.List(r.Context(), callerID)
	if err != nil {
		respondWithServiceError(r.Context(), w, err, h.logger)
		return
	}

	respondWithJSON(r.Context(), w, http.StatusOK, toWorkoutSummaryResponses(summaries), h.logger)
}

func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserID(r.Context())
	if !ok {
		respondWithError(r.Context(), w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	workoutID, err := workoutIDParam(r)
	if err != nil {
		respondWithError(r.Context(), w, http.StatusBadRequest, "invalid workout id", h.logger)
		return
	}

	workout, err := h.service.GetByID(r.Context(), workoutID, callerID)
	if err != nil {
		respondWithServiceError(r.Context(), w, err, h.logger)
		return
	}

	respondWithJSON(r.Context(), w, http.StatusOK, toWorkoutResponse(workout), h.logger)
}

func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserID(r.Context())
	if !ok {
		respondWithError(r.Context(), w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	var params services.WorkoutParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondWithError(r.Context(), w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	workout, err := h.service.Create(r.Context(), params, callerID)
	if err != nil {
		respondWithServiceError(r.Context(), w, err, h.logger)
		return
	}

	h.logger.Info(r.Context(), "workout created", "workout_id", workout.ID, "user_id", callerID)
	respondWithJSON(r.Context(), w, http.StatusCreated, toWorkoutResponse(workout), h.logger)
}

func (h *WorkoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserID(r.Context())
	if !ok {
		respondWithError(r.Context(), w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	workoutID, err := workoutIDParam(r)
	if err != nil {
		respondWithError(r.Context(), w, http.StatusBadRequest, "invalid workout id", h.logger)
		return
	}

	var params services.WorkoutParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondWithError(r.Context(), w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	workout, err := h.service.Update(r.Context(), workoutID, params, callerID)
	if err != nil {
		respondWithServiceError(r.Context(), w, err, h.logger)
		return
	}

	respondWithJSON(r.Context(), w, http.StatusOK, toWorkoutResponse(workout), h.logger)
}

func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserID(r.Context())
	if !ok {
		respondWithError(r.Context(), w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	workoutID, err := workoutIDParam(r)
	if err != nil {
		respondWithError(r.Context(), w, http.StatusBadRequest, "invalid workout id", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), workoutID, callerID); err != nil {
		respondWithServiceError(r.Context(), w, err, h.logger)
		return
	}

	h.logger.Info(r.Context(), "workout deleted", "workout_id", workoutID, "user_id", callerID)
	w.WriteHeader(http.StatusNoContent)
}

func workoutIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
