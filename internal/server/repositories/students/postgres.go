package students

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

func (r *PostgresRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	query := `
		INSERT INTO students (name, username, classroom_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		student.Name, student.Username, student.ClassroomID).Scan(&student.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return student, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	query := `
		SELECT id, name, username, classroom_id
		FROM students
		WHERE username = $1
	`
	student := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&student.ID, &student.Name, &student.Username, &student.ClassroomID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return student, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, username, classroom_id
		FROM students
		WHERE id = $1
	`
	student := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&student.ID, &student.Name, &student.Username, &student.ClassroomID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return student, nil
}

func (r *PostgresRepository) DeleteByClassroom(ctx context.Context, classroomID int64) error {
	query := `
		DELETE FROM students
		WHERE classroom_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, classroomID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
