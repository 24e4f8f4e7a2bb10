// This file implements WorkoutService: owner-scoped CRUD over the workout
// aggregate. Every operation takes the authenticated caller's user id and
// enforces the single-owner model before touching data.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avolkau/fittrack/internal/common"
	"github.com/avolkau/fittrack/internal/dbx"
	"github.com/avolkau/fittrack/internal/server/auth"
	"github.com/avolkau/fittrack/internal/server/models"
	"github.com/avolkau/fittrack/internal/server/repositories/repomanager"
)

// ExerciseParams mirrors the field constraints of the exercise form.
type ExerciseParams struct {
	Name   string  `json:"name" validate:"required,max=200"`
	Sets   int     `json:"sets" validate:"min=1,max=100"`
	Reps   int     `json:"reps" validate:"min=1,max=1000"`
	Weight float64 `json:"weight" validate:"min=0,max=10000"`
	Order  int     `json:"order" validate:"min=0,max=100"`
}

// WorkoutParams is the payload for both create and update: updates replace
// the whole aggregate, so the two shapes are identical.
type WorkoutParams struct {
	Name            string           `json:"name" validate:"required,max=200"`
	Date            time.Time        `json:"date" validate:"required"`
	DurationMinutes int              `json:"durationMinutes" validate:"min=0,max=1440"`
	Notes           string           `json:"notes" validate:"max=1000"`
	Exercises       []ExerciseParams `json:"exercises" validate:"dive"`
}

// WorkoutService provides owner-scoped workout operations.
type WorkoutService struct {
	db *sql.DB
	rm repomanager.RepositoryManager
}

func NewWorkoutService(db *sql.DB, rm repomanager.RepositoryManager) *WorkoutService {
	return &WorkoutService{db: db, rm: rm}
}

// GetByID returns the full aggregate, or ErrorNotFound / ErrorForbidden.
func (s *WorkoutService) GetByID(ctx context.Context, workoutID, callerID int64) (*models.Workout, error) {
	repo := s.rm.Workouts(s.db)

	workout, err := repo.GetByID(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	if !auth.CanAccess(callerID, workout.UserID) {
		return nil, common.ErrorForbidden
	}

	return workout, nil
}

// List returns the caller's workout summaries, newest date first.
func (s *WorkoutService) List(ctx context.Context, callerID int64) ([]*models.WorkoutSummary, error) {
	return s.rm.Workouts(s.db).GetByUser(ctx, callerID)
}

// Create persists a new aggregate owned by the caller and returns it
// re-fetched, so the result always carries generated ids and timestamps.
func (s *WorkoutService) Create(ctx context.Context, p WorkoutParams, callerID int64) (*models.Workout, error) {
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	workout := s.toModel(p, callerID)

	var id int64
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		id, txErr = s.rm.Workouts(tx).Create(ctx, workout)
		return txErr
	}); err != nil {
		return nil, fmt.Errorf("error creating workout: %w", err)
	}

	return s.rm.Workouts(s.db).GetByID(ctx, id)
}

// Update overwrites the aggregate: scalar fields are replaced and the
// exercise set is recreated wholesale, so omitted exercises disappear.
// Concurrent updates are last-writer-wins.
func (s *WorkoutService) Update(ctx context.Context, workoutID int64, p WorkoutParams, callerID int64) (*models.Workout, error) {
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	if err := s.checkOwnership(ctx, workoutID, callerID); err != nil {
		return nil, err
	}

	workout := s.toModel(p, callerID)
	workout.ID = workoutID

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.rm.Workouts(tx).Update(ctx, workout)
	}); err != nil {
		return nil, err
	}

	return s.rm.Workouts(s.db).GetByID(ctx, workoutID)
}

// Delete removes the aggregate; exercises are cascade-deleted by the store.
func (s *WorkoutService) Delete(ctx context.Context, workoutID, callerID int64) error {
	if err := s.checkOwnership(ctx, workoutID, callerID); err != nil {
		return err
	}

	deleted, err := s.rm.Workouts(s.db).Delete(ctx, workoutID)
	if err != nil {
		return fmt.Errorf("error deleting workout: %w", err)
	}
	if !deleted {
		return common.ErrorNotFound
	}
	return nil
}

// checkOwnership short-circuits mutations without loading the aggregate:
// ErrorNotFound when the workout does not exist, ErrorForbidden when it is
// owned by someone else.
func (s *WorkoutService) checkOwnership(ctx context.Context, workoutID, callerID int64) error {
	owned, err := s.rm.Workouts(s.db).BelongsToUser(ctx, workoutID, callerID)
	if err != nil {
		return err
	}
	if !owned {
		return common.ErrorForbidden
	}
	return nil
}

func (s *WorkoutService) toModel(p WorkoutParams, callerID int64) *models.Workout {
	workout := &models.Workout{
		UserID:          callerID,
		Name:            p.Name,
		Date:            p.Date,
		DurationMinutes: p.DurationMinutes,
		Notes:           p.Notes,
	}
	for _, e := range p.Exercises {
		workout.Exercises = append(workout.Exercises, models.Exercise{
			Name:   e.Name,
			Sets:   e.Sets,
			Reps:   e.Reps,
			Weight: e.Weight,
			Order:  e.Order,
		})
	}
	return workout
}
