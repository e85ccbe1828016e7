// Package students declares the repository contract for student records.
package students

import (
	"context"

	"github.com/hytex/classroom-server/internal/server/models"
)

// Repository defines persistence operations for students.
type Repository interface {
	// Create inserts a student and returns it with its assigned ID.
	// Returns common.ErrorAlreadyExists when the username is taken.
	Create(ctx context.Context, student *models.Student) (*models.Student, error)

	// GetByUsername returns the student with the given username or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.Student, error)

	// GetByID returns the student with the given id or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Student, error)

	// DeleteByClassroom removes every student enrolled in the classroom.
	DeleteByClassroom(ctx context.Context, classroomID int64) error
}
