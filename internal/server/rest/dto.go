package rest

import (
	"time"

	"github.com/avolkau/fittrack/internal/server/models"
	"github.com/avolkau/fittrack/internal/server/services"
)

type authResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

func toAuthResponse(res *services.AuthResult) authResponse {
	return authResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		UserID:    res.UserID,
		Email:     res.Email,
		FirstName: res.FirstName,
		LastName:  res.LastName,
	}
}

type exerciseResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	Order  int     `json:"order"`
}

type workoutResponse struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Date            time.Time          `json:"date"`
	DurationMinutes int                `json:"durationMinutes"`
	Notes           string             `json:"notes"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       *time.Time         `json:"updatedAt"`
	Exercises       []exerciseResponse `json:"exercises"`
}

func toWorkoutResponse(w *models.Workout) workoutResponse {
	resp := workoutResponse{
		ID:              w.ID,
		Name:            w.Name,
		Date:            w.Date,
		DurationMinutes: w.DurationMinutes,
		Notes:           w.Notes,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
		Exercises:       make([]exerciseResponse, 0, len(w.Exercises)),
	}
	for _, e := range w.Exercises {
		resp.Exercises = append(resp.Exercises, exerciseResponse{
			ID:     e.ID,
			Name:   e.Name,
			Sets:   e.Sets,
			Reps:   e.Reps,
			Weight: e.Weight,
			Order:  e.Order,
		})
	}
	return resp
}

type workoutSummaryResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	ExerciseCount   int       `json:"exerciseCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toWorkoutSummaryResponses(summaries []*models.WorkoutSummary) []workoutSummaryResponse {
	out := make([]workoutSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, workoutSummaryResponse{
			ID:              s.ID,
			Name:            s.Name,
			Date:            s.Date,
			DurationMinutes: s.DurationMinutes,
			ExerciseCount:   s.ExerciseCount,
			CreatedAt:       s.CreatedAt,
		})
	}
	return out
}
