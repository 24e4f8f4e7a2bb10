package models

import "time"

// Workout is an owned aggregate: the workout row plus its exercises, treated
// as a single lifecycle unit. UserID is immutable once set.
type Workout struct {
	ID              int64
	UserID          int64
	Name            string
	Date            time.Time
	DurationMinutes int
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	Exercises       []Exercise
}

// Exercise is a child of a Workout. Exercises have no independent lifecycle:
// updating the parent replaces the whole set. Order drives display sorting.
type Exercise struct {
	ID        int64
	WorkoutID int64
	Name      string
	Sets      int
	Reps      int
	Weight    float64
	Order     int
}

// WorkoutSummary is the list-view projection of a workout.
type WorkoutSummary struct {
	ID              int64
	Name            string
	Date            time.Time
	DurationMinutes int
	ExerciseCount   int
	CreatedAt       time.Time
}
