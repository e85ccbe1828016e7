// Package teachers declares the repository contract for teacher accounts.
package teachers

import (
	"context"

	"github.com/hytex/classroom-server/internal/server/models"
)

// Repository defines persistence operations for teacher accounts.
type Repository interface {
	// Create inserts a teacher and returns it with its assigned ID.
	// Returns common.ErrorAlreadyExists when the email is taken.
	Create(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)

	// GetByEmail returns the teacher with the given email or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Teacher, error)
}
