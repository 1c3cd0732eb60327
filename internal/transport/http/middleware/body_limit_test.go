package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBodyLimitRejectsOversizedJSON(t *testing.T) {
	handler := BodyLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("oversized request must not reach the handler")
	}))

	body := strings.Repeat("x", 64)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/screenings", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestBodyLimitAllowsSmallBodiesAndGETs(t *testing.T) {
	var reached bool
	handler := BodyLimit(1024)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest(http.MethodPost, "/api/v1/screenings", strings.NewReader(`{"ok":true}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if !reached || w.Code != http.StatusNoContent {
		t.Fatalf("small body rejected: reached=%v status=%d", reached, w.Code)
	}

	reached = false
	r = httptest.NewRequest(http.MethodGet, "/api/v1/screenings", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if !reached {
		t.Fatal("GET must bypass the body limit")
	}
}

func TestBodyLimitExemptsMultipartUploads(t *testing.T) {
	var reached bool
	handler := BodyLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusCreated)
	}))

	body := strings.Repeat("x", 64)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/documents", strings.NewReader(body))
	r.Header.Set("Content-Type", "multipart/form-data; boundary=abc123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if !reached {
		t.Fatal("multipart upload must bypass the JSON body limit")
	}
}
