package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hytex/classroom-server/internal/server/auth"
)

func doRequest(t *testing.T, srv *HTTPServer, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func teacherToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	token, err := auth.GenerateToken(1, auth.RoleTeacher, []byte(secret), ttl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return token
}

func studentToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	token, err := auth.GenerateToken(1, auth.RoleStudent, []byte(secret), ttl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return token
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/teachers/checkLogin", "", "")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Unauthorized"}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestAuthenticate_BadHeaderShape(t *testing.T) {
	srv, _, cfg := newTestServer(t)
	token := teacherToken(t, cfg.AccessTokenSecret, time.Minute)

	for _, header := range []string{
		"Basic " + token,
		"Bearer",
		token, // no scheme
	} {
		req := httptest.NewRequest(http.MethodGet, "/teachers/checkLogin", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status %d, got %d", header, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/teachers/checkLogin", "not.a.jwt", "")

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Forbidden"}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	srv, _, cfg := newTestServer(t)
	token := teacherToken(t, cfg.AccessTokenSecret, -time.Second)

	w := doRequest(t, srv, http.MethodGet, "/teachers/checkLogin", token, "")

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	srv, _, _ := newTestServer(t)
	token := teacherToken(t, "another-secret", time.Minute)

	w := doRequest(t, srv, http.MethodGet, "/teachers/checkLogin", token, "")

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	srv, _, cfg := newTestServer(t)
	teacher := teacherToken(t, cfg.AccessTokenSecret, time.Minute)
	student := studentToken(t, cfg.AccessTokenSecret, time.Minute)

	tests := []struct {
		name   string
		method string
		target string
		token  string
		want   int
	}{
		{"teacher on teacher route", http.MethodGet, "/teachers/checkLogin", teacher, http.StatusOK},
		{"student on teacher route", http.MethodGet, "/teachers/checkLogin", student, http.StatusForbidden},
		{"student on student route", http.MethodGet, "/students/checkLogin", student, http.StatusOK},
		{"teacher on student route", http.MethodGet, "/students/checkLogin", teacher, http.StatusForbidden},
		{"teacher on classrooms", http.MethodGet, "/classrooms/list", teacher, http.StatusOK},
		{"student on classrooms", http.MethodGet, "/classrooms/list", student, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, srv, tt.method, tt.target, tt.token, "")
			if w.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

// A refresh token must never work as an access token even though both are
// HS256 JWTs: they are signed with different secrets.
func TestAuthenticate_RefreshTokenRejectedAsAccess(t *testing.T) {
	srv, _, cfg := newTestServer(t)
	token := teacherToken(t, cfg.RefreshTokenSecret, time.Minute)

	w := doRequest(t, srv, http.MethodGet, "/teachers/checkLogin", token, "")

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}
