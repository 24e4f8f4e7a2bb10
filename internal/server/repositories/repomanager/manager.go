// Package repomanager wires repositories to database handles and owns
// startup migrations. Services hold a manager plus a *sql.DB and obtain
// repositories bound either to the DB or to a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkau/fittrack/internal/dbx"
	"github.com/avolkau/fittrack/internal/server/repositories/users"
	"github.com/avolkau/fittrack/internal/server/repositories/workouts"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Workouts(db dbx.DBTX) workouts.Repository
}
