package workouts

import (
	"context"

	"github.com/avolkau/fittrack/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*models.Workout, error)
	GetByUser(ctx context.Context, userID int64) ([]*models.WorkoutSummary, error)
	Create(ctx context.Context, workout *models.Workout) (int64, error)
	Update(ctx context.Context, workout *models.Workout) error
	Delete(ctx context.Context, id int64) (bool, error)
	BelongsToUser(ctx context.Context, workoutID, userID int64) (bool, error)
}
