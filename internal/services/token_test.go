package services

import (
	"errors"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tokens := NewTokenService()

	signed, err := tokens.Issue(42)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("Parse returned user %d, want 42", userID)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	issuer := NewTokenService()
	signed, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	verifier := NewTokenService()
	if _, err := verifier.Parse(signed); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated for foreign token, got %v", err)
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tokens := NewTokenService()

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Parse(bad); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("Parse(%q): expected ErrUnauthenticated, got %v", bad, err)
		}
	}
}
