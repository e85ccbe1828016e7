package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hytex/classroom-server/internal/common"
	"github.com/hytex/classroom-server/internal/logging"
	"github.com/hytex/classroom-server/internal/server/models"
	"github.com/hytex/classroom-server/internal/server/repositories/repomanager"
)

// SurveyService records survey scores and serves a student's own scores.
type SurveyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewSurveyService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *SurveyService {
	return &SurveyService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "surveys"),
	}
}

// Record stores a survey score for a student. The student must exist.
func (s *SurveyService) Record(ctx context.Context, teacherID int64, surveyCode string, studentID int64, score int64) (*models.Survey, error) {
	if _, err := s.repomanager.Students(s.db).GetByID(ctx, studentID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	survey := &models.Survey{
		SurveyCode: surveyCode,
		StudentID:  studentID,
		TeacherID:  teacherID,
		Score:      score,
	}
	survey, err := s.repomanager.Surveys(s.db).Create(ctx, survey)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return survey, nil
}

// ListForStudent returns all scores recorded for the student.
func (s *SurveyService) ListForStudent(ctx context.Context, studentID int64) ([]models.Survey, error) {
	result, err := s.repomanager.Surveys(s.db).ListByStudent(ctx, studentID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}
