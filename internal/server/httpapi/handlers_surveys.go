package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hytex/classroom-server/internal/common"
)

type recordSurveyRequest struct {
	StudentID int64  `json:"studentId"`
	Score     *int64 `json:"score"`
}

type surveyResponse struct {
	ID         int64  `json:"id"`
	SurveyCode string `json:"surveyCode"`
	Score      int64  `json:"score"`
	Date       string `json:"date"`
}

// RecordSurveyHandler stores a survey score for a student. A score of zero
// is valid, so the field is a pointer to tell "absent" from "zero".
func (s *HTTPServer) RecordSurveyHandler(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	surveyCode := chi.URLParam(r, "surveyCode")

	var req recordSurveyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.StudentID == 0 {
		respondError(w, http.StatusBadRequest, "studentId is required")
		return
	}
	if req.Score == nil {
		respondError(w, http.StatusBadRequest, "score is required")
		return
	}
	if *req.Score < 0 {
		respondError(w, http.StatusBadRequest, "score must not be negative")
		return
	}

	if _, err := s.surveys.Record(r.Context(), claims.UserID, surveyCode, req.StudentID, *req.Score); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(w, http.StatusNotFound, "student does not exist")
			return
		}
		s.logger.Error(r.Context(), "error recording survey", "error", err.Error())
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "survey recorded"})
}

// MySurveysHandler returns all scores recorded for the calling student.
func (s *HTTPServer) MySurveysHandler(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	result, err := s.surveys.ListForStudent(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	resp := make([]surveyResponse, 0, len(result))
	for _, item := range result {
		resp = append(resp, surveyResponse{
			ID:         item.ID,
			SurveyCode: item.SurveyCode,
			Score:      item.Score,
			Date:       item.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	respondJSON(w, http.StatusOK, resp)
}
