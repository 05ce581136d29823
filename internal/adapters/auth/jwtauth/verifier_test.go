package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestVerifier_ValidToken(t *testing.T) {
	v := NewVerifier("test-secret")

	raw := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "user-1",
		"email":   "user@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(context.Background(), raw)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user-1, got %s", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("expected email, got %s", claims.Email)
	}
}

func TestVerifier_SubjectFallback(t *testing.T) {
	v := NewVerifier("test-secret")

	raw := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "user-2",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(context.Background(), raw)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-2" {
		t.Fatalf("expected sub as user id, got %s", claims.UserID)
	}
}

func TestVerifier_Rejections(t *testing.T) {
	v := NewVerifier("test-secret")

	if _, err := v.Verify(context.Background(), ""); err != ErrTokenEmpty {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}

	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	if _, err := v.Verify(context.Background(), wrongKey); err == nil {
		t.Fatalf("expected error for wrong signing key")
	}

	expired := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	if _, err := v.Verify(context.Background(), expired); err == nil {
		t.Fatalf("expected error for expired token")
	}

	noUser := signToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	if _, err := v.Verify(context.Background(), noUser); err == nil {
		t.Fatalf("expected error for missing user id")
	}

	var nilVerifier *Verifier
	if _, err := nilVerifier.Verify(context.Background(), wrongKey); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNewVerifier_EmptySecret(t *testing.T) {
	if v := NewVerifier("   "); v != nil {
		t.Fatalf("expected nil verifier without secret")
	}
}
