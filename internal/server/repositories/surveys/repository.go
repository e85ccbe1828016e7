// Package surveys declares the repository contract for survey scores.
package surveys

import (
	"context"

	"github.com/hytex/classroom-server/internal/server/models"
)

// Repository defines persistence operations for survey scores.
type Repository interface {
	// Create inserts a survey score row and returns it with its assigned ID.
	Create(ctx context.Context, survey *models.Survey) (*models.Survey, error)

	// ListByStudent returns all scores recorded for the student.
	ListByStudent(ctx context.Context, studentID int64) ([]models.Survey, error)

	// DeleteByClassroom removes every score of students enrolled in the
	// classroom.
	DeleteByClassroom(ctx context.Context, classroomID int64) error
}
