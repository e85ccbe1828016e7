package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hytex/classroom-server/internal/common"
	"github.com/hytex/classroom-server/internal/logging"
	"github.com/hytex/classroom-server/internal/server/auth"
	"github.com/hytex/classroom-server/internal/server/models"
	"github.com/hytex/classroom-server/internal/server/repositories/repomanager"
)

// TeacherService handles teacher registration and login.
type TeacherService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *TokenService
	logger      logging.Logger
}

func NewTeacherService(db *sql.DB, m repomanager.RepositoryManager, tokens *TokenService, l logging.Logger) *TeacherService {
	return &TeacherService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		logger:      l.With("module", "teachers"),
	}
}

// Register creates a teacher account with a bcrypt-hashed password.
// Returns common.ErrorAlreadyExists when the email is taken.
func (s *TeacherService) Register(ctx context.Context, name, email, password string) (*models.Teacher, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	teacher := &models.Teacher{Name: name, Email: email, PasswordHash: string(hash)}
	repo := s.repomanager.Teachers(s.db)
	teacher, err = repo.Create(ctx, teacher)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating teacher: %v", err)
	}

	return teacher, nil
}

// Login verifies the email/password pair and, on success, returns the
// teacher together with a fresh token pair. Unknown emails and wrong
// passwords both yield common.ErrorUnauthorized.
func (s *TeacherService) Login(ctx context.Context, email, password string) (*models.Teacher, *TokenPair, error) {
	repo := s.repomanager.Teachers(s.db)
	teacher, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(password)); err != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.tokens.Issue(ctx, Identity{UserID: teacher.ID, Role: auth.RoleTeacher})
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return teacher, pair, nil
}
