package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	s := NewTokenService("test-secret")

	token, err := s.Issue("user@example.com", "User")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %q", claims.Email)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected an expiry claim")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 || ttl > TokenTTL {
		t.Errorf("expected expiry within %v, got %v", TokenTTL, ttl)
	}
}

func TestVerifyFailuresCollapseToInvalidToken(t *testing.T) {
	s := NewTokenService("test-secret")

	expired := func() string {
		claims := &Claims{
			Email: "user@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("signing expired token: %v", err)
		}
		return token
	}()

	wrongSecret, err := NewTokenService("other-secret").Issue("user@example.com", "User")
	if err != nil {
		t.Fatalf("issuing with other secret: %v", err)
	}

	noEmail, err := s.Issue("", "")
	if err != nil {
		t.Fatalf("issuing without email: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"wrong signature", wrongSecret},
		{"missing email claim", noEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Verify(tc.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
