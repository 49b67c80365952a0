package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newGuardedHandler(t *testing.T, secret string, ttl time.Duration) (*AuthHandler, http.Handler) {
	t.Helper()

	h := NewAuthHandler(secret, ttl, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := UserIDFromContext(r)
		if err != nil {
			t.Errorf("user id missing from context: %v", err)
		}
		if userID != 42 {
			t.Errorf("user id mismatch: got %d want 42", userID)
		}
		w.WriteHeader(http.StatusOK)
	})
	return h, h.AuthMiddleware(next)
}

func TestAuthMiddleware_MissingHeaderIsForbidden(t *testing.T) {
	t.Parallel()

	_, guarded := newGuardedHandler(t, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for missing header, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MalformedHeaderIsForbidden(t *testing.T) {
	t.Parallel()

	_, guarded := newGuardedHandler(t, "secret", time.Hour)

	// "Bearer " carries an empty credential, which counts as malformed too
	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("header %q: expected 403, got %d", header, rec.Code)
		}
	}
}

func TestAuthMiddleware_InvalidTokenIsUnauthorized(t *testing.T) {
	t.Parallel()

	_, guarded := newGuardedHandler(t, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredTokenIsUnauthorized(t *testing.T) {
	t.Parallel()

	h, guarded := newGuardedHandler(t, "secret", -1*time.Minute)

	tok, err := h.service.GenerateJWT(42)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ValidTokenPassesUserID(t *testing.T) {
	t.Parallel()

	h, guarded := newGuardedHandler(t, "secret", time.Hour)

	tok, err := h.service.GenerateJWT(42)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	// scheme comparison is case-insensitive
	for _, scheme := range []string{"Bearer", "bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.Header.Set("Authorization", scheme+" "+tok)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("scheme %q: expected 200, got %d", scheme, rec.Code)
		}
	}
}

func TestAuthMiddleware_TokenFromOtherSecretIsUnauthorized(t *testing.T) {
	t.Parallel()

	other := NewAuthService(nil, "other-secret", time.Hour)
	tok, err := other.GenerateJWT(42)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	_, guarded := newGuardedHandler(t, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for foreign-key token, got %d", rec.Code)
	}
}
