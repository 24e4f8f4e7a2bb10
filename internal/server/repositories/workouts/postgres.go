// Package workouts provides the PostgreSQL-backed store for workout
// aggregates (a workout row plus its ordered exercises).
package workouts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkau/fittrack/internal/common"
	"github.com/avolkau/fittrack/internal/dbx"
	"github.com/avolkau/fittrack/internal/server/models"
)

// PostgresRepository implements workout storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). Mutating operations that touch both tables are
// expected to run inside a transaction supplied by the caller.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID loads the full aggregate. Exercises come back sorted ascending by
// their order index, with the row id breaking ties so equal order values
// still sort deterministically.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Workout, error) {
	query :=
		`SELECT id, user_id, name, date, duration_minutes, notes, created_at, updated_at FROM workouts
		 WHERE id = $1
		 `

	w := &models.Workout{}
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.UserID, &w.Name, &w.Date, &w.DurationMinutes, &w.Notes, &w.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if updatedAt.Valid {
		w.UpdatedAt = &updatedAt.Time
	}

	exercises, err := r.selectExercises(ctx, id)
	if err != nil {
		return nil, err
	}
	w.Exercises = exercises

	return w, nil
}

// GetByUser returns list-view summaries for all of the user's workouts,
// newest workout date first.
func (r *PostgresRepository) GetByUser(ctx context.Context, userID int64) ([]*models.WorkoutSummary, error) {
	query :=
		`SELECT w.id, w.name, w.date, w.duration_minutes,
		        (SELECT COUNT(*) FROM exercises e WHERE e.workout_id = w.id) AS exercise_count,
		        w.created_at
		 FROM workouts w
		 WHERE w.user_id = $1
		 ORDER BY w.date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.WorkoutSummary
	for rows.Next() {
		var item models.WorkoutSummary
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Date, &item.DurationMinutes, &item.ExerciseCount, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts the workout row and its exercises and returns the generated
// workout id. Callers re-fetch via GetByID to observe the full aggregate.
func (r *PostgresRepository) Create(ctx context.Context, workout *models.Workout) (int64, error) {
	query :=
		`INSERT INTO workouts (user_id, name, date, duration_minutes, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		workout.UserID, workout.Name, workout.Date, workout.DurationMinutes, workout.Notes).Scan(&workout.ID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	if err := r.insertExercises(ctx, workout.ID, workout.Exercises); err != nil {
		return 0, err
	}

	return workout.ID, nil
}

// Update overwrites the scalar fields, stamps updated_at and replaces the
// whole exercise set (delete all, insert the new list). Exercises omitted
// from the new list disappear.
func (r *PostgresRepository) Update(ctx context.Context, workout *models.Workout) error {
	query :=
		`UPDATE workouts SET name = $1, date = $2, duration_minutes = $3, notes = $4, updated_at = now()
		 WHERE id = $5
		 `

	res, err := r.db.ExecContext(ctx, query,
		workout.Name, workout.Date, workout.DurationMinutes, workout.Notes, workout.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE workout_id = $1`, workout.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return r.insertExercises(ctx, workout.ID, workout.Exercises)
}

// Delete removes the workout; exercises go with it via the cascading FK.
// Returns false when no row matched.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

// BelongsToUser is the existence+ownership check used before mutations, so
// callers do not have to load the full aggregate. A missing workout yields
// ErrorNotFound; a workout owned by someone else yields (false, nil).
func (r *PostgresRepository) BelongsToUser(ctx context.Context, workoutID, userID int64) (bool, error) {
	var ownerID int64
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM workouts WHERE id = $1`, workoutID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, common.ErrorNotFound
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return ownerID == userID, nil
}

func (r *PostgresRepository) selectExercises(ctx context.Context, workoutID int64) ([]models.Exercise, error) {
	query :=
		`SELECT id, workout_id, name, sets, reps, weight, "order" FROM exercises
		 WHERE workout_id = $1
		 ORDER BY "order" ASC, id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var item models.Exercise
		if err := rows.Scan(
			&item.ID, &item.WorkoutID, &item.Name, &item.Sets, &item.Reps, &item.Weight, &item.Order,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) insertExercises(ctx context.Context, workoutID int64, exercises []models.Exercise) error {
	query :=
		`INSERT INTO exercises (workout_id, name, sets, reps, weight, "order")
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	for _, e := range exercises {
		if _, err := r.db.ExecContext(ctx, query,
			workoutID, e.Name, e.Sets, e.Reps, e.Weight, e.Order); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}
