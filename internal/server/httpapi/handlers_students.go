package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hytex/classroom-server/internal/common"
)

type createStudentRequest struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	ClassroomID int64  `json:"classroomId"`
}

type studentLoginRequest struct {
	Username string `json:"username"`
}

type studentLoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
}

type studentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	ClassroomID int64  `json:"classroomId"`
}

// CreateStudentHandler enrolls a student in one of the caller's classrooms.
func (s *HTTPServer) CreateStudentHandler(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var req createStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Username) == "" || req.ClassroomID == 0 {
		respondError(w, http.StatusBadRequest, "name, username and classroomId are required")
		return
	}

	student, err := s.students.Create(r.Context(), claims.UserID, req.Name, req.Username, req.ClassroomID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			respondError(w, http.StatusNotFound, "classroom does not exist")
		case errors.Is(err, common.ErrorForbidden):
			respondError(w, http.StatusForbidden, msgForbidden)
		case errors.Is(err, common.ErrorAlreadyExists):
			respondError(w, http.StatusBadRequest, "there is already a student with this username")
		default:
			s.logger.Error(r.Context(), "error creating student", "error", err.Error())
			respondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"inserted": student.ID})
}

// StudentLoginHandler issues a token pair for a username-only login.
func (s *HTTPServer) StudentLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req studentLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Username) == "" {
		respondError(w, http.StatusBadRequest, "username is required")
		return
	}

	student, pair, err := s.students.Login(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			respondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondJSON(w, http.StatusOK, studentLoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ID:           student.ID,
		Username:     student.Username,
		Name:         student.Name,
	})
}

// StudentMeHandler returns the caller's own student record.
func (s *HTTPServer) StudentMeHandler(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	student, err := s.students.Get(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "student does not exist")
			return
		}
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondJSON(w, http.StatusOK, studentResponse{
		ID:          student.ID,
		Name:        student.Name,
		Username:    student.Username,
		ClassroomID: student.ClassroomID,
	})
}
