package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func TestCreateClassroom(t *testing.T) {
	srv, rm, cfg := newTestServer(t)
	token := teacherToken(t, cfg.AccessTokenSecret, time.Minute)

	w := doRequest(t, srv, http.MethodPost, "/classrooms/", token, `{"name":"Physics 201"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if len(rm.classrooms.classrooms) != 2 {
		t.Errorf("expected 2 classrooms in store, got %d", len(rm.classrooms.classrooms))
	}
}

func TestCreateClassroom_DuplicateName(t *testing.T) {
	srv, _, cfg := newTestServer(t)
	token := teacherToken(t, cfg.AccessTokenSecret, time.Minute)

	w := doRequest(t, srv, http.MethodPost, "/classrooms/", token, `{"name":"Math 101"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestListClassrooms(t *testing.T) {
	srv, _, cfg := newTestServer(t)
	token := teacherToken(t, cfg.AccessTokenSecret, time.Minute)

	w := doRequest(t, srv, http.MethodGet, "/classrooms/list", token, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp []classroomSummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 1 || resp[0].Name != "Math 101" {
		t.Errorf("unexpected list: %+v", resp)
	}
}

func TestCreateStudent(t *testing.T) {
	srv, rm, cfg := newTestServer(t)
	token := teacherToken(t, cfg.AccessTokenSecret, time.Minute)

	w := doRequest(t, srv, http.MethodPost, "/students/", token,
		`{"name":"Alan","username":"alan02","classroomId":1}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if _, ok := rm.students.students["alan02"]; !ok {
		t.Error("student was not persisted")
	}
}

func TestCreateStudent_MissingClassroom(t *testing.T) {
	srv, _, cfg := newTestServer(t)
	token := teacherToken(t, cfg.AccessTokenSecret, time.Minute)

	w := doRequest(t, srv, http.MethodPost, "/students/", token,
		`{"name":"Alan","username":"alan02","classroomId":99}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestStudentMe(t *testing.T) {
	srv, _, cfg := newTestServer(t)
	token := studentToken(t, cfg.AccessTokenSecret, time.Minute)

	w := doRequest(t, srv, http.MethodGet, "/students/me", token, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp studentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Username != "grace01" || resp.ClassroomID != 1 {
		t.Errorf("unexpected student: %+v", resp)
	}
}

func TestRecordSurvey(t *testing.T) {
	srv, rm, cfg := newTestServer(t)
	token := teacherToken(t, cfg.AccessTokenSecret, time.Minute)

	w := doRequest(t, srv, http.MethodPost, "/surveys/attention", token,
		`{"studentId":1,"score":0}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if len(rm.surveys.surveys) != 1 {
		t.Fatalf("expected 1 recorded survey, got %d", len(rm.surveys.surveys))
	}
	if got := rm.surveys.surveys[0]; got.Score != 0 || got.SurveyCode != "attention" {
		t.Errorf("unexpected survey row: %+v", got)
	}
}

func TestRecordSurvey_Validation(t *testing.T) {
	srv, _, cfg := newTestServer(t)
	token := teacherToken(t, cfg.AccessTokenSecret, time.Minute)

	for _, body := range []string{
		`{"score":5}`,               // no student
		`{"studentId":1}`,           // no score
		`{"studentId":1,"score":-1}`, // negative score
	} {
		w := doRequest(t, srv, http.MethodPost, "/surveys/attention", token, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected status %d, got %d", body, http.StatusBadRequest, w.Code)
		}
	}
}

func TestMySurveys(t *testing.T) {
	srv, _, cfg := newTestServer(t)
	teacher := teacherToken(t, cfg.AccessTokenSecret, time.Minute)
	student := studentToken(t, cfg.AccessTokenSecret, time.Minute)

	for _, body := range []string{`{"studentId":1,"score":3}`, `{"studentId":1,"score":7}`} {
		if w := doRequest(t, srv, http.MethodPost, "/surveys/mood", teacher, body); w.Code != http.StatusOK {
			t.Fatalf("recording survey failed with status %d", w.Code)
		}
	}

	w := doRequest(t, srv, http.MethodGet, "/surveys/mine", student, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp []surveyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 surveys, got %d", len(resp))
	}
	if resp[0].SurveyCode != "mood" || resp[1].Score != 7 {
		t.Errorf("unexpected surveys: %+v", resp)
	}
}
