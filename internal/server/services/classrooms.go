package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hytex/classroom-server/internal/common"
	"github.com/hytex/classroom-server/internal/dbx"
	"github.com/hytex/classroom-server/internal/logging"
	"github.com/hytex/classroom-server/internal/server/models"
	"github.com/hytex/classroom-server/internal/server/repositories/repomanager"
)

// ClassroomService handles a teacher's classrooms.
type ClassroomService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewClassroomService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *ClassroomService {
	return &ClassroomService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "classrooms"),
	}
}

// Create adds a classroom for the teacher. Per-teacher classroom names are
// unique; duplicates yield common.ErrorAlreadyExists.
func (s *ClassroomService) Create(ctx context.Context, teacherID int64, name string) (*models.Classroom, error) {
	classroom := &models.Classroom{Name: name, TeacherID: teacherID}
	classroom, err := s.repomanager.Classrooms(s.db).Create(ctx, classroom)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}
	return classroom, nil
}

// List returns the teacher's classrooms with student counts.
func (s *ClassroomService) List(ctx context.Context, teacherID int64) ([]models.ClassroomSummary, error) {
	summaries, err := s.repomanager.Classrooms(s.db).ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return summaries, nil
}

// Delete removes one of the teacher's classrooms together with its students
// and their survey scores, in a single transaction. Returns
// common.ErrorNotFound when the classroom does not exist or belongs to
// another teacher.
func (s *ClassroomService) Delete(ctx context.Context, teacherID int64, classroomID int64) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Surveys(tx).DeleteByClassroom(ctx, classroomID); err != nil {
			return fmt.Errorf("error deleting classroom surveys: %v", err)
		}
		if err := s.repomanager.Students(tx).DeleteByClassroom(ctx, classroomID); err != nil {
			return fmt.Errorf("error deleting classroom students: %v", err)
		}
		deleted, err := s.repomanager.Classrooms(tx).Delete(ctx, classroomID, teacherID)
		if err != nil {
			return fmt.Errorf("error deleting classroom: %v", err)
		}
		if !deleted {
			return common.ErrorNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.logger.Error(ctx, "error deleting classroom", "error", err.Error())
		return common.ErrorInternal
	}
	return nil
}
