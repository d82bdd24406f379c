package auth_test

import (
	"testing"

	"github.com/joycybakery/fournil/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("u1", "marie@example.com", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("expected user_id u1, got %q", claims.UserID)
	}
	if claims.Email != "marie@example.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("unexpected role %q", claims.Role)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Error("expected garbage token to fail validation")
	}
}

func TestValidateRejectsTampering(t *testing.T) {
	token, err := auth.GenerateToken("u1", "marie@example.com", "customer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := auth.ValidateToken(tampered); err == nil {
		t.Error("expected tampered signature to fail validation")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plain text")
	}

	if !auth.CheckPassword(hash, "secret123") {
		t.Error("expected correct password to verify")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
