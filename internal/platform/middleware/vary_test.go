package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVarySetsAccept(t *testing.T) {
	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/", nil))

	if got := resp.Header().Get("Vary"); got != "Accept" {
		t.Fatalf("expected Vary: Accept, got %q", got)
	}
}

func TestVaryAppendsToExisting(t *testing.T) {
	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Add("Vary", "Origin")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("test body"))
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/", nil))

	values := resp.Header().Values("Vary")
	if len(values) != 2 || values[0] != "Accept" || values[1] != "Origin" {
		t.Fatalf("expected [Accept Origin], got %v", values)
	}
	if resp.Code != http.StatusCreated || resp.Body.String() != "test body" {
		t.Fatalf("downstream response altered: %d %q", resp.Code, resp.Body.String())
	}
}
