package surveys

import (
	"context"
	"fmt"

	"github.com/hytex/classroom-server/internal/dbx"
	"github.com/hytex/classroom-server/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, survey *models.Survey) (*models.Survey, error) {
	query := `
		INSERT INTO surveys (survey_code, student_id, teacher_id, score)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		survey.SurveyCode, survey.StudentID, survey.TeacherID, survey.Score).Scan(&survey.ID, &survey.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return survey, nil
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Survey, error) {
	query := `
		SELECT id, survey_code, student_id, teacher_id, score, created_at
		FROM surveys
		WHERE student_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Survey{}
	for rows.Next() {
		var s models.Survey
		if err := rows.Scan(&s.ID, &s.SurveyCode, &s.StudentID, &s.TeacherID, &s.Score, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) DeleteByClassroom(ctx context.Context, classroomID int64) error {
	query := `
		DELETE FROM surveys
		WHERE student_id IN (SELECT id FROM students WHERE classroom_id = $1)
	`
	if _, err := r.db.ExecContext(ctx, query, classroomID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
