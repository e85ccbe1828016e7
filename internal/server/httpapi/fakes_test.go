package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hytex/classroom-server/internal/common"
	"github.com/hytex/classroom-server/internal/dbx"
	"github.com/hytex/classroom-server/internal/logging"
	"github.com/hytex/classroom-server/internal/server/config"
	"github.com/hytex/classroom-server/internal/server/models"
	classroomsrepo "github.com/hytex/classroom-server/internal/server/repositories/classrooms"
	refreshtokensrepo "github.com/hytex/classroom-server/internal/server/repositories/refreshtokens"
	"github.com/hytex/classroom-server/internal/server/repositories/repomanager"
	studentsrepo "github.com/hytex/classroom-server/internal/server/repositories/students"
	surveysrepo "github.com/hytex/classroom-server/internal/server/repositories/surveys"
	teachersrepo "github.com/hytex/classroom-server/internal/server/repositories/teachers"
	"github.com/hytex/classroom-server/internal/server/services"
)

// In-memory repositories backing the HTTP tests. The refresh-token store is
// the one that matters: the end-to-end scenarios exercise revocation
// through it.

type memRefreshRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newMemRefreshRepo() *memRefreshRepo {
	return &memRefreshRepo{tokens: map[string]*models.RefreshToken{}}
}

func (f *memRefreshRepo) Create(ctx context.Context, userID int64, role string, token string, validity time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = &models.RefreshToken{
		UserID:  userID,
		Role:    role,
		Token:   token,
		Expires: time.Now().Add(validity),
	}
	return nil
}

func (f *memRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return row, nil
}

func (f *memRefreshRepo) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}

type memTeachersRepo struct {
	teachers map[string]*models.Teacher
}

func (f *memTeachersRepo) Create(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	if _, ok := f.teachers[teacher.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	teacher.ID = int64(len(f.teachers) + 1)
	f.teachers[teacher.Email] = teacher
	return teacher, nil
}

func (f *memTeachersRepo) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	teacher, ok := f.teachers[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return teacher, nil
}

type memStudentsRepo struct {
	students map[string]*models.Student
}

func (f *memStudentsRepo) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if _, ok := f.students[student.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	student.ID = int64(len(f.students) + 1)
	f.students[student.Username] = student
	return student, nil
}

func (f *memStudentsRepo) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	student, ok := f.students[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return student, nil
}

func (f *memStudentsRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	for _, student := range f.students {
		if student.ID == id {
			return student, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memStudentsRepo) DeleteByClassroom(ctx context.Context, classroomID int64) error {
	for username, student := range f.students {
		if student.ClassroomID == classroomID {
			delete(f.students, username)
		}
	}
	return nil
}

type memClassroomsRepo struct {
	classrooms map[int64]*models.Classroom
}

func (f *memClassroomsRepo) Create(ctx context.Context, classroom *models.Classroom) (*models.Classroom, error) {
	for _, c := range f.classrooms {
		if c.TeacherID == classroom.TeacherID && c.Name == classroom.Name {
			return nil, common.ErrorAlreadyExists
		}
	}
	classroom.ID = int64(len(f.classrooms) + 1)
	f.classrooms[classroom.ID] = classroom
	return classroom, nil
}

func (f *memClassroomsRepo) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	classroom, ok := f.classrooms[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return classroom, nil
}

func (f *memClassroomsRepo) ListByTeacher(ctx context.Context, teacherID int64) ([]models.ClassroomSummary, error) {
	summaries := []models.ClassroomSummary{}
	for _, c := range f.classrooms {
		if c.TeacherID == teacherID {
			summaries = append(summaries, models.ClassroomSummary{ID: c.ID, Name: c.Name})
		}
	}
	return summaries, nil
}

func (f *memClassroomsRepo) Delete(ctx context.Context, id int64, teacherID int64) (bool, error) {
	classroom, ok := f.classrooms[id]
	if !ok || classroom.TeacherID != teacherID {
		return false, nil
	}
	delete(f.classrooms, id)
	return true, nil
}

type memSurveysRepo struct {
	surveys []models.Survey
}

func (f *memSurveysRepo) Create(ctx context.Context, survey *models.Survey) (*models.Survey, error) {
	survey.ID = int64(len(f.surveys) + 1)
	survey.CreatedAt = time.Now()
	f.surveys = append(f.surveys, *survey)
	return survey, nil
}

func (f *memSurveysRepo) ListByStudent(ctx context.Context, studentID int64) ([]models.Survey, error) {
	result := []models.Survey{}
	for _, s := range f.surveys {
		if s.StudentID == studentID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *memSurveysRepo) DeleteByClassroom(ctx context.Context, classroomID int64) error {
	return nil
}

type memRepoManager struct {
	refresh    *memRefreshRepo
	teachers   *memTeachersRepo
	students   *memStudentsRepo
	classrooms *memClassroomsRepo
	surveys    *memSurveysRepo
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Teachers(db dbx.DBTX) teachersrepo.Repository { return m.teachers }
func (m *memRepoManager) Students(db dbx.DBTX) studentsrepo.Repository { return m.students }
func (m *memRepoManager) Classrooms(db dbx.DBTX) classroomsrepo.Repository {
	return m.classrooms
}
func (m *memRepoManager) Surveys(db dbx.DBTX) surveysrepo.Repository { return m.surveys }
func (m *memRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository {
	return m.refresh
}

var _ repomanager.RepositoryManager = (*memRepoManager)(nil)

// newTestServer wires an HTTPServer over in-memory repositories, pre-seeded
// with one teacher (ada@example.com / secretpw1), one classroom, and one
// enrolled student (grace01).
func newTestServer(t *testing.T) (*HTTPServer, *memRepoManager, *config.Config) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secretpw1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}

	rm := &memRepoManager{
		refresh: newMemRefreshRepo(),
		teachers: &memTeachersRepo{teachers: map[string]*models.Teacher{
			"ada@example.com": {ID: 1, Name: "Ada", Email: "ada@example.com", PasswordHash: string(hash)},
		}},
		students: &memStudentsRepo{students: map[string]*models.Student{
			"grace01": {ID: 1, Name: "Grace", Username: "grace01", ClassroomID: 1},
		}},
		classrooms: &memClassroomsRepo{classrooms: map[int64]*models.Classroom{
			1: {ID: 1, Name: "Math 101", TeacherID: 1},
		}},
		surveys: &memSurveysRepo{},
	}

	cfg := &config.Config{
		AccessTokenSecret:            "access-secret",
		RefreshTokenSecret:           "refresh-secret",
		AccessTokenValidityDuration:  15 * time.Minute,
		RefreshTokenValidityDuration: 7 * 24 * time.Hour,
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tokens := services.NewTokenService(nil, rm, logger, cfg)
	teachers := services.NewTeacherService(nil, rm, tokens, logger)
	students := services.NewStudentService(nil, rm, tokens, logger)
	classrooms := services.NewClassroomService(nil, rm, logger)
	surveys := services.NewSurveyService(nil, rm, logger)

	srv := NewHTTPServer(":0", logger, tokens, teachers, students, classrooms, surveys)
	return srv, rm, cfg
}
