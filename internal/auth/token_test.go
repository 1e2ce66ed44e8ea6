package auth

import (
	"testing"

	"github.com/civichub/mts/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 60)

	token, exp, err := tm.GenerateToken("user-123", domain.RoleStaff)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if exp.IsZero() {
		t.Fatal("expected expiry to be set")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("expected user-123, got %s", claims.UserID)
	}
	if claims.Role != domain.RoleStaff {
		t.Fatalf("expected STAFF role, got %s", claims.Role)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.GenerateToken("user-123", domain.RoleCitizen)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", 60)
	if _, err := tm.ParseToken("not-a-jwt"); err == nil {
		t.Fatal("expected parse failure")
	}
}
