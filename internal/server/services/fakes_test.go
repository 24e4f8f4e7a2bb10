package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avolkau/fittrack/internal/dbx"
	"github.com/avolkau/fittrack/internal/server/models"
	usersrepo "github.com/avolkau/fittrack/internal/server/repositories/users"
	workoutsrepo "github.com/avolkau/fittrack/internal/server/repositories/workouts"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	created *models.User // captures the user passed to Create

	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeWorkoutsRepo struct {
	getOut *models.Workout
	getErr error

	listOut []*models.WorkoutSummary
	listErr error

	createdWorkout *models.Workout // captures the aggregate passed to Create
	createID       int64
	createErr      error

	updatedWorkout *models.Workout // captures the aggregate passed to Update
	updateErr      error

	deleteOK  bool
	deleteErr error

	belongsOK  bool
	belongsErr error
}

func (f *fakeWorkoutsRepo) GetByID(ctx context.Context, id int64) (*models.Workout, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeWorkoutsRepo) GetByUser(ctx context.Context, userID int64) ([]*models.WorkoutSummary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeWorkoutsRepo) Create(ctx context.Context, w *models.Workout) (int64, error) {
	f.createdWorkout = w
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.createID, nil
}

func (f *fakeWorkoutsRepo) Update(ctx context.Context, w *models.Workout) error {
	f.updatedWorkout = w
	return f.updateErr
}

func (f *fakeWorkoutsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return f.deleteOK, f.deleteErr
}

func (f *fakeWorkoutsRepo) BelongsToUser(ctx context.Context, workoutID, userID int64) (bool, error) {
	if f.belongsErr != nil {
		return false, f.belongsErr
	}
	return f.belongsOK, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	w *fakeWorkoutsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.u }

func (m *fakeRepoManager) Workouts(db dbx.DBTX) workoutsrepo.Repository { return m.w }
