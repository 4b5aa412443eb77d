package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
	"github.com/nasibcs/uniadmin/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (AuthService, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "uniadmin.test",
	})
	svc, err := NewAuthService("nasib", "nasib", jwtService)
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}
	return svc, jwtService
}

func TestLoginSuccess(t *testing.T) {
	svc, jwtService := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "nasib", Password: "nasib"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
	if resp.Username != "nasib" {
		t.Fatalf("expected username nasib, got %q", resp.Username)
	}
	if resp.ExpiresIn != 3600 {
		t.Fatalf("expected expiresIn 3600, got %d", resp.ExpiresIn)
	}

	// The issued token must pass the same validation the route guard runs
	claims, err := jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token rejected: %v", err)
	}
	if claims.Username != "nasib" {
		t.Fatalf("expected claims for nasib, got %q", claims.Username)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.LoginRequest
	}{
		{"wrong password", &dto.LoginRequest{Username: "nasib", Password: "wrong"}},
		{"wrong username", &dto.LoginRequest{Username: "admin", Password: "nasib"}},
		{"case sensitive username", &dto.LoginRequest{Username: "Nasib", Password: "nasib"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	for _, req := range []*dto.LoginRequest{
		nil,
		{Username: "", Password: "nasib"},
		{Username: "nasib", Password: ""},
	} {
		_, err := svc.Login(ctx, req)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed for %+v, got %v", req, err)
		}
	}
}
