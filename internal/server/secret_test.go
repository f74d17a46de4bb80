package server

import (
	"net/http"
	"testing"
	"time"
)

// createSession creates a gate session over HTTP and returns its ID.
func createSession(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/v1/secret/sessions", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: status = %d", rec.Code)
	}
	v := decode[sessionView](t, rec)
	if v.SessionID == "" || v.State != "locked" {
		t.Fatalf("create session: view = %+v", v)
	}
	return v.SessionID
}

func TestSecretFlow_UnlocksGallery(t *testing.T) {
	s := newTestServer(t, &mockDispatcher{}, time.Now())
	h := s.NewHTTPHandler()
	id := createSession(t, h)

	steps := []struct {
		path string
		body any
		want string
	}{
		{"/password", map[string]string{"password": "LALLEEE"}, "password_checked"},
		{"/begin", nil, "question_1"},
		{"/answers", map[string]string{"answer": "Kappooo"}, "question_2"},
		{"/answers", map[string]string{"answer": "10"}, "question_3"},
		{"/answers", map[string]string{"answer": "everything"}, "unlocked"},
	}
	for _, step := range steps {
		rec := doJSON(t, h, http.MethodPost, "/v1/secret/sessions/"+id+step.path, step.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("POST %s: status = %d, body = %s", step.path, rec.Code, rec.Body.String())
		}
		v := decode[sessionView](t, rec)
		if v.State != step.want {
			t.Fatalf("POST %s: state = %s, want %s", step.path, v.State, step.want)
		}
	}

	rec := doJSON(t, h, http.MethodGet, "/v1/secret/sessions/"+id+"/gallery", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("gallery after unlock: status = %d", rec.Code)
	}
	gallery := decode[map[string][]string](t, rec)
	if len(gallery["images"]) == 0 {
		t.Error("unlocked gallery is empty")
	}
}

func TestSecretFlow_GalleryLockedUntilUnlocked(t *testing.T) {
	s := newTestServer(t, &mockDispatcher{}, time.Now())
	h := s.NewHTTPHandler()
	id := createSession(t, h)

	rec := doJSON(t, h, http.MethodGet, "/v1/secret/sessions/"+id+"/gallery", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 before unlock", rec.Code)
	}
}

func TestSecretFlow_WrongPassword(t *testing.T) {
	s := newTestServer(t, &mockDispatcher{}, time.Now())
	h := s.NewHTTPHandler()
	id := createSession(t, h)

	rec := doJSON(t, h, http.MethodPost, "/v1/secret/sessions/"+id+"/password", map[string]string{"password": "loveyou"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	v := decode[sessionView](t, rec)
	if v.State != "locked" || v.Error == "" {
		t.Fatalf("view = %+v, want locked with error", v)
	}
}

func TestSecretFlow_MismatchLoopsBack(t *testing.T) {
	s := newTestServer(t, &mockDispatcher{}, time.Now())
	h := s.NewHTTPHandler()
	id := createSession(t, h)

	doJSON(t, h, http.MethodPost, "/v1/secret/sessions/"+id+"/password", map[string]string{"password": "lalleee"})
	doJSON(t, h, http.MethodPost, "/v1/secret/sessions/"+id+"/begin", nil)
	doJSON(t, h, http.MethodPost, "/v1/secret/sessions/"+id+"/answers", map[string]string{"answer": "wrong"})
	doJSON(t, h, http.MethodPost, "/v1/secret/sessions/"+id+"/answers", map[string]string{"answer": "5"})
	rec := doJSON(t, h, http.MethodPost, "/v1/secret/sessions/"+id+"/answers", map[string]string{"answer": "wrong"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	v := decode[sessionView](t, rec)
	if v.State != "question_1" || v.Attempts != 1 {
		t.Fatalf("view = %+v, want question_1 with 1 attempt", v)
	}
}

func TestSecretFlow_UnknownSession(t *testing.T) {
	s := newTestServer(t, &mockDispatcher{}, time.Now())
	h := s.NewHTTPHandler()

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/v1/secret/sessions/sess-missing"},
		{http.MethodPost, "/v1/secret/sessions/sess-missing/begin"},
		{http.MethodGet, "/v1/secret/sessions/sess-missing/gallery"},
	} {
		rec := doJSON(t, h, req.method, req.path, nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s: status = %d, want 404", req.method, req.path, rec.Code)
		}
	}
}
