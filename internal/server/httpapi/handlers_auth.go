package httpapi

import (
	"errors"
	"net/http"

	"github.com/hytex/classroom-server/internal/common"
)

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type logoutRequest struct {
	Token string `json:"token"`
}

// RefreshHandler exchanges a still-live refresh token for a new access
// token. A missing token is 401; a revoked, expired, or otherwise invalid
// token is 403. The two rejections stay generic on purpose.
func (s *HTTPServer) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil || req.RefreshToken == "" {
		s.logger.Warn(r.Context(), "no refresh token provided")
		respondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	accessToken, err := s.tokens.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorForbidden) {
			respondError(w, http.StatusForbidden, msgForbidden)
			return
		}
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	respondJSON(w, http.StatusOK, refreshResponse{AccessToken: accessToken})
}

// LogoutHandler revokes a refresh token. It responds 204 regardless of
// whether a row was actually removed, so the status code leaks nothing
// about token validity.
func (s *HTTPServer) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if err := decodeJSON(r, &req); err == nil && req.Token != "" {
		if err := s.tokens.Logout(r.Context(), req.Token); err != nil {
			s.logger.Error(r.Context(), "error revoking refresh token", "error", err.Error())
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckLoginHandler is a guarded ping: reaching it means the caller's
// access token and role both passed.
func (s *HTTPServer) CheckLoginHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "OK"})
}
