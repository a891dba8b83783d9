package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paperhub/paperhub/internal/ctxkeys"
	"github.com/paperhub/paperhub/internal/model"
)

func okHandler(called *bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}
}

func TestRequireAuth_NoUser(t *testing.T) {
	t.Parallel()

	called := false
	h := RequireAuth(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Fatalf("handler called without identity")
	}
}

func TestRequireAuth_WithUser(t *testing.T) {
	t.Parallel()

	called := false
	h := RequireAuth(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: "u1"}))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK || !called {
		t.Fatalf("expected handler to run, got %d", rec.Code)
	}
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	t.Parallel()

	called := false
	h := RequireAdmin(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: "u1"}))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if called {
		t.Fatalf("handler called for non-admin")
	}
}

func TestRequireAdmin_Admin(t *testing.T) {
	t.Parallel()

	called := false
	h := RequireAdmin(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: "u1", IsAdmin: true}))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK || !called {
		t.Fatalf("expected handler to run, got %d", rec.Code)
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc.def.ghi", "abc.def.ghi"},
		{"Basic dXNlcjpwYXNz", ""},
		{"Bearer", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		got := bearerToken(req)
		if got != tt.want {
			t.Fatalf("bearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
