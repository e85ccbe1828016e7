package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hytex/classroom-server/internal/common"
)

type createClassroomRequest struct {
	Name string `json:"name"`
}

type classroomSummaryResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	NumberStudents int64  `json:"numberStudents"`
}

// CreateClassroomHandler adds a classroom for the caller.
func (s *HTTPServer) CreateClassroomHandler(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var req createClassroomRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	classroom, err := s.classrooms.Create(r.Context(), claims.UserID, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			respondError(w, http.StatusBadRequest, "there is already a classroom with this name")
			return
		}
		s.logger.Error(r.Context(), "error creating classroom", "error", err.Error())
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"inserted": classroom.ID})
}

// ListClassroomsHandler lists the caller's classrooms with student counts.
func (s *HTTPServer) ListClassroomsHandler(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	summaries, err := s.classrooms.List(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	resp := make([]classroomSummaryResponse, 0, len(summaries))
	for _, c := range summaries {
		resp = append(resp, classroomSummaryResponse{
			ID:             c.ID,
			Name:           c.Name,
			NumberStudents: c.NumberStudents,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// DeleteClassroomHandler removes one of the caller's classrooms together
// with its students and their scores.
func (s *HTTPServer) DeleteClassroomHandler(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	classroomID, err := strconv.ParseInt(chi.URLParam(r, "classroomID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid classroom id")
		return
	}

	if err := s.classrooms.Delete(r.Context(), claims.UserID, classroomID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "classroom does not exist")
			return
		}
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
