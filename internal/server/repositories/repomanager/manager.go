// Package repomanager defines the RepositoryManager abstraction: a factory
// that vends repositories bound to a DBTX, so services can run an operation
// against the pool or inside a transaction with the same code.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/hytex/classroom-server/internal/dbx"
	"github.com/hytex/classroom-server/internal/server/repositories/classrooms"
	"github.com/hytex/classroom-server/internal/server/repositories/refreshtokens"
	"github.com/hytex/classroom-server/internal/server/repositories/students"
	"github.com/hytex/classroom-server/internal/server/repositories/surveys"
	"github.com/hytex/classroom-server/internal/server/repositories/teachers"
)

// RepositoryManager vends repository implementations bound to the provided
// DBTX and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Teachers(db dbx.DBTX) teachers.Repository
	Students(db dbx.DBTX) students.Repository
	Classrooms(db dbx.DBTX) classrooms.Repository
	Surveys(db dbx.DBTX) surveys.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
