package classrooms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hytex/classroom-server/internal/common"
	"github.com/hytex/classroom-server/internal/dbx"
	"github.com/hytex/classroom-server/internal/server/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, classroom *models.Classroom) (*models.Classroom, error) {
	query := `
		INSERT INTO classrooms (name, teacher_id)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		classroom.Name, classroom.TeacherID).Scan(&classroom.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return classroom, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	query := `
		SELECT id, name, teacher_id
		FROM classrooms
		WHERE id = $1
	`
	classroom := &models.Classroom{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&classroom.ID, &classroom.Name, &classroom.TeacherID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return classroom, nil
}

func (r *PostgresRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]models.ClassroomSummary, error) {
	query := `
		SELECT c.id, c.name, COUNT(s.id) AS number_students
		FROM classrooms c
		LEFT JOIN students s ON s.classroom_id = c.id
		WHERE c.teacher_id = $1
		GROUP BY c.id, c.name
		ORDER BY c.id
	`
	rows, err := r.db.QueryContext(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	summaries := []models.ClassroomSummary{}
	for rows.Next() {
		var s models.ClassroomSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.NumberStudents); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return summaries, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64, teacherID int64) (bool, error) {
	query := `
		DELETE FROM classrooms
		WHERE id = $1 AND teacher_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, id, teacherID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}
