package auth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/app/system/auth"
)

func newTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	svc, err := auth.NewTokenService("test-secret-at-least-16", "folio-test", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func TestNewTokenService_ShortSecret(t *testing.T) {
	if _, err := auth.NewTokenService("short", "", 0); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTokens(t)

	tok, err := svc.Generate("admin@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Count(tok, ".") != 2 {
		t.Fatalf("token does not look like a JWT: %q", tok)
	}

	email, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if email != "admin@example.com" {
		t.Errorf("email: got %q, want %q", email, "admin@example.com")
	}
}

func TestValidate_Rejects(t *testing.T) {
	svc := newTokens(t)
	other, err := auth.NewTokenService("another-secret-of-16+", "folio-test", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	otherIssuer, err := auth.NewTokenService("test-secret-at-least-16", "someone-else", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	foreign, _ := other.Generate("admin@example.com")
	wrongIss, _ := otherIssuer.Generate("admin@example.com")
	good, _ := svc.Generate("admin@example.com")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"wrong secret", foreign},
		{"wrong issuer", wrongIss},
		{"tampered", good[:len(good)-2] + "xx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Validate(tt.token); err == nil {
				t.Errorf("expected %s token to be rejected", tt.name)
			}
		})
	}
}

func TestValidate_Expired(t *testing.T) {
	svc := newTokens(t)
	tok, err := svc.GenerateWithDuration("admin@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateWithDuration: %v", err)
	}
	if _, err := svc.Validate(tok); !errors.Is(err, auth.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestCredentials_Verify(t *testing.T) {
	hash, err := auth.HashPassword("hashed-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	plain := auth.Credentials{Email: "Admin@Example.com", Password: "s3cret"}
	hashed := auth.Credentials{Email: "admin@example.com", PasswordHash: hash}

	tests := []struct {
		name  string
		creds auth.Credentials
		email string
		pass  string
		want  bool
	}{
		{"plain ok", plain, "admin@example.com", "s3cret", true},
		{"plain case-insensitive email", plain, " ADMIN@example.com ", "s3cret", true},
		{"plain wrong password", plain, "admin@example.com", "nope", false},
		{"plain wrong email", plain, "x@example.com", "s3cret", false},
		{"hash ok", hashed, "admin@example.com", "hashed-pass", true},
		{"hash wrong", hashed, "admin@example.com", "s3cret", false},
		{"unconfigured", auth.Credentials{}, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.creds.Verify(tt.email, tt.pass); got != tt.want {
				t.Errorf("Verify: got %v, want %v", got, tt.want)
			}
		})
	}
}
