// Package httpapi exposes the classroom server over REST: routing, the
// authentication middleware and role guards, and the JSON handlers.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hytex/classroom-server/internal/logging"
	"github.com/hytex/classroom-server/internal/server/auth"
	"github.com/hytex/classroom-server/internal/server/services"
)

type HTTPServer struct {
	address    string
	logger     logging.Logger
	tokens     *services.TokenService
	teachers   *services.TeacherService
	students   *services.StudentService
	classrooms *services.ClassroomService
	surveys    *services.SurveyService
}

func NewHTTPServer(a string, l logging.Logger,
	tokens *services.TokenService,
	teachers *services.TeacherService,
	students *services.StudentService,
	classrooms *services.ClassroomService,
	surveys *services.SurveyService) *HTTPServer {
	return &HTTPServer{
		address:    a,
		logger:     l.With("module", "http_server"),
		tokens:     tokens,
		teachers:   teachers,
		students:   students,
		classrooms: classrooms,
		surveys:    surveys,
	}
}

// Router builds the chi router: the public token and login endpoints plus
// the guarded CRUD surface. Guarded groups compose Authenticate first and
// the role check second.
func (s *HTTPServer) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/token", s.RefreshHandler)
	r.Post("/logout", s.LogoutHandler)

	r.Route("/teachers", func(r chi.Router) {
		r.Post("/", s.RegisterTeacherHandler)
		r.Post("/login", s.TeacherLoginHandler)
		r.Group(func(r chi.Router) {
			r.Use(s.Authenticate, s.RequireRole(auth.RoleTeacher))
			r.Get("/checkLogin", s.CheckLoginHandler)
		})
	})

	r.Route("/students", func(r chi.Router) {
		r.Post("/login", s.StudentLoginHandler)
		r.Group(func(r chi.Router) {
			r.Use(s.Authenticate, s.RequireRole(auth.RoleTeacher))
			r.Post("/", s.CreateStudentHandler)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.Authenticate, s.RequireRole(auth.RoleStudent))
			r.Get("/me", s.StudentMeHandler)
			r.Get("/checkLogin", s.CheckLoginHandler)
		})
	})

	r.Route("/classrooms", func(r chi.Router) {
		r.Use(s.Authenticate, s.RequireRole(auth.RoleTeacher))
		r.Post("/", s.CreateClassroomHandler)
		r.Get("/list", s.ListClassroomsHandler)
		r.Delete("/{classroomID}", s.DeleteClassroomHandler)
	})

	r.Route("/surveys", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.Authenticate, s.RequireRole(auth.RoleTeacher))
			r.Post("/{surveyCode}", s.RecordSurveyHandler)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.Authenticate, s.RequireRole(auth.RoleStudent))
			r.Get("/mine", s.MySurveysHandler)
		})
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "error shutting down HTTP server", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
