package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func serveRequestID(t *testing.T, incoming string, set bool) (captured string, resp *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if set {
		req.Header.Set(chimiddleware.RequestIDHeader, incoming)
	}
	resp = httptest.NewRecorder()
	RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	})).ServeHTTP(resp, req)
	return captured, resp
}

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	captured, resp := serveRequestID(t, "", false)

	if captured == "" {
		t.Fatal("expected generated request ID")
	}
	if header := resp.Header().Get(chimiddleware.RequestIDHeader); header != captured {
		t.Fatalf("expected response header %q, got %q", captured, header)
	}
	parsed, err := uuid.Parse(captured)
	if err != nil {
		t.Fatalf("request ID %q is not a UUID: %v", captured, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDValidation(t *testing.T) {
	tests := []struct {
		name    string
		inputID string
		keep    bool
	}{
		{"empty", "", false},
		{"alphanumeric", "abc123-XYZ", true},
		{"uuid", "550e8400-e29b-41d4-a716-446655440000", true},
		{"spaces", "trace id 123", true},
		{"punctuation", "trace:abc-123_def.456!@#$%", true},
		{"exactly max length", strings.Repeat("x", 128), true},
		{"too long", strings.Repeat("a", 129), false},
		{"newline", "valid\ninjected", false},
		{"carriage return", "valid\rinjected", false},
		{"tab", "valid\ttab", false},
		{"null byte", "valid\x00null", false},
		{"DEL", "valid\x7Fdel", false},
		{"high byte", "valid\x80high", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured, resp := serveRequestID(t, tt.inputID, true)

			if tt.keep {
				if captured != tt.inputID {
					t.Fatalf("expected %q to be kept, got %q", tt.inputID, captured)
				}
			} else {
				if captured == tt.inputID {
					t.Fatalf("expected %q to be replaced", tt.inputID)
				}
				if _, err := uuid.Parse(captured); err != nil {
					t.Fatalf("replacement %q is not a UUID: %v", captured, err)
				}
			}
			if got := resp.Header().Get(chimiddleware.RequestIDHeader); got != captured {
				t.Fatalf("expected header %q, got %q", captured, got)
			}
		})
	}
}
