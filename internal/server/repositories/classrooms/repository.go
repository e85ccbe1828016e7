// Package classrooms declares the repository contract for classrooms.
package classrooms

import (
	"context"

	"github.com/hytex/classroom-server/internal/server/models"
)

// Repository defines persistence operations for classrooms.
type Repository interface {
	// Create inserts a classroom and returns it with its assigned ID.
	// Returns common.ErrorAlreadyExists when the teacher already has a
	// classroom with this name.
	Create(ctx context.Context, classroom *models.Classroom) (*models.Classroom, error)

	// GetByID returns the classroom with the given id or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Classroom, error)

	// ListByTeacher returns the teacher's classrooms with student counts.
	ListByTeacher(ctx context.Context, teacherID int64) ([]models.ClassroomSummary, error)

	// Delete removes the classroom owned by teacherID and reports whether a
	// row was removed.
	Delete(ctx context.Context, id int64, teacherID int64) (bool, error)
}
