package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hytex/classroom-server/internal/common"
	"github.com/hytex/classroom-server/internal/logging"
	"github.com/hytex/classroom-server/internal/server/auth"
	"github.com/hytex/classroom-server/internal/server/models"
	"github.com/hytex/classroom-server/internal/server/repositories/repomanager"
)

// StudentService handles student enrollment and username-only login.
type StudentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *TokenService
	logger      logging.Logger
}

func NewStudentService(db *sql.DB, m repomanager.RepositoryManager, tokens *TokenService, l logging.Logger) *StudentService {
	return &StudentService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		logger:      l.With("module", "students"),
	}
}

// Create enrolls a student in one of the teacher's classrooms. The classroom
// must exist and belong to teacherID, otherwise common.ErrorForbidden.
func (s *StudentService) Create(ctx context.Context, teacherID int64, name, username string, classroomID int64) (*models.Student, error) {
	classroom, err := s.repomanager.Classrooms(s.db).GetByID(ctx, classroomID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if classroom.TeacherID != teacherID {
		return nil, common.ErrorForbidden
	}

	student := &models.Student{Name: name, Username: username, ClassroomID: classroomID}
	student, err = s.repomanager.Students(s.db).Create(ctx, student)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return student, nil
}

// Login looks the student up by username and, on success, returns the
// student together with a fresh token pair. Students have no password; the
// username is the whole credential.
func (s *StudentService) Login(ctx context.Context, username string) (*models.Student, *TokenPair, error) {
	student, err := s.repomanager.Students(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	pair, err := s.tokens.Issue(ctx, Identity{UserID: student.ID, Role: auth.RoleStudent})
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return student, pair, nil
}

// Get returns the student record for the given id.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.repomanager.Students(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return student, nil
}
