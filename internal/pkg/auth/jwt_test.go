package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "uniadmin.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresIn, err := svc.GenerateToken("nasib")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	if expiresIn != 3600 {
		t.Fatalf("expected expiresIn 3600, got %d", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Username != "nasib" {
		t.Fatalf("expected username nasib, got %q", claims.Username)
	}
	if claims.Issuer != "uniadmin.test" {
		t.Fatalf("expected issuer uniadmin.test, got %q", claims.Issuer)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken("nasib")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour, TokenIssuer: "uniadmin.test"})

	token, _, err := svc.GenerateToken("nasib")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"standard", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty", "", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
