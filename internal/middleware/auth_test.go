package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RitaM5/Learn-Lingo-server/internal/auth"
	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/store/memstore"
)

func newTestAuth(t *testing.T) (*Auth, *auth.TokenService) {
	t.Helper()
	tokens := auth.NewTokenService("test-secret")
	st := memstore.New()
	seed := []models.User{
		{Email: "admin@example.com", Role: models.RoleAdmin},
		{Email: "teach@example.com", Role: models.RoleInstructor},
		{Email: "student@example.com"},
	}
	for _, u := range seed {
		if _, err := st.Users().Insert(context.Background(), u); err != nil {
			t.Fatalf("seeding user: %v", err)
		}
	}
	return &Auth{Tokens: tokens, Users: st.Users()}, tokens
}

func bearer(t *testing.T, tokens *auth.TokenService, email string) string {
	t.Helper()
	token, err := tokens.Issue(email, "Test")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return "Bearer " + token
}

func TestRequireAuth(t *testing.T) {
	a, tokens := newTestAuth(t)

	var gotEmail string
	handler := a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		if !ok {
			t.Fatal("claims missing from context")
		}
		gotEmail = claims.Email
	}))

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Token abc", http.StatusUnauthorized},
		{"invalid token", "Bearer garbage", http.StatusUnauthorized},
		{"valid token", bearer(t, tokens, "student@example.com"), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}

	if gotEmail != "student@example.com" {
		t.Errorf("expected claims email student@example.com, got %q", gotEmail)
	}
}

func TestRequireRole(t *testing.T) {
	a, tokens := newTestAuth(t)

	handler := a.RequireAuth(a.RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	cases := []struct {
		name       string
		email      string
		wantStatus int
	}{
		{"admin passes", "admin@example.com", http.StatusOK},
		{"instructor forbidden", "teach@example.com", http.StatusForbidden},
		{"role-less user forbidden", "student@example.com", http.StatusForbidden},
		{"unknown user forbidden", "ghost@example.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin-only", nil)
			req.Header.Set("Authorization", bearer(t, tokens, tc.email))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestRequireRoleWithoutAuthIsUnauthorized(t *testing.T) {
	a, _ := newTestAuth(t)

	// RequireRole chained without RequireAuth finds no claims and refuses.
	handler := a.RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest("GET", "/admin-only", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}
