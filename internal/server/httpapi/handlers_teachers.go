package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hytex/classroom-server/internal/common"
)

type registerTeacherRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type teacherLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type teacherLoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
}

// RegisterTeacherHandler creates a teacher account.
func (s *HTTPServer) RegisterTeacherHandler(w http.ResponseWriter, r *http.Request) {
	var req registerTeacherRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		respondError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}
	if len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "password must have at least 8 characters")
		return
	}

	teacher, err := s.teachers.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			respondError(w, http.StatusBadRequest, "there is already a teacher with this email")
			return
		}
		s.logger.Error(r.Context(), "error registering teacher", "error", err.Error())
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"inserted": teacher.ID})
}

// TeacherLoginHandler verifies credentials and issues a token pair.
func (s *HTTPServer) TeacherLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req teacherLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	teacher, pair, err := s.teachers.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			respondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondJSON(w, http.StatusOK, teacherLoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ID:           teacher.ID,
		Email:        teacher.Email,
		Name:         teacher.Name,
	})
}
