package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret-that-is-at-least-32-chars!!"

func TestVerifier_RoundTrip(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret, "craftshop")
	callerID := uuid.New()

	token, err := v.SignToken(callerID, time.Minute)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	got, err := v.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if got != callerID {
		t.Errorf("caller ID: got %s, want %s", got, callerID)
	}
}

func TestVerifier_EmptyToken(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret, "craftshop")
	if _, err := v.ValidateToken(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestVerifier_Expired(t *testing.T) {
	t.Parallel()

	v := NewVerifier(testSecret, "craftshop")
	token, err := v.SignToken(uuid.New(), -time.Minute)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	if _, err := v.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestVerifier_WrongIssuer(t *testing.T) {
	t.Parallel()

	issuer := NewVerifier(testSecret, "someone-else")
	token, err := issuer.SignToken(uuid.New(), time.Minute)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	v := NewVerifier(testSecret, "craftshop")
	if _, err := v.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestVerifier_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewVerifier("another-secret-that-is-also-32-chars!!!", "craftshop")
	token, err := issuer.SignToken(uuid.New(), time.Minute)
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	v := NewVerifier(testSecret, "craftshop")
	if _, err := v.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestVerifier_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	// alg=none style tokens must be rejected regardless of claims.
	claims := jwt.RegisteredClaims{
		Subject: uuid.New().String(),
		Issuer:  "craftshop",
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	v := NewVerifier(testSecret, "craftshop")
	if _, err := v.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected error for none-signed token")
	}
}

func TestVerifier_NonUUIDSubject(t *testing.T) {
	t.Parallel()

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		Issuer:    "craftshop",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	v := NewVerifier(testSecret, "craftshop")
	if _, err := v.ValidateToken(context.Background(), signed); err == nil {
		t.Fatal("expected error for non-UUID subject")
	}
}
