package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
	"github.com/nasibcs/uniadmin/internal/pkg/auth"
	"github.com/nasibcs/uniadmin/internal/pkg/logger"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface. There is a
// single configured admin account; the password is only held as a
// bcrypt hash after construction.
type authServiceImpl struct {
	username     string
	passwordHash string
	jwtService   *auth.JWTService
}

// NewAuthService creates an auth service for the configured credentials
func NewAuthService(username, password string, jwtService *auth.JWTService) (AuthService, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authServiceImpl{
		username:     username,
		passwordHash: hash,
		jwtService:   jwtService,
	}, nil
}

// Login checks the credentials and issues a session token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req == nil || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("username and password are required")
	}

	if req.Username != s.username || !auth.CheckPassword(s.passwordHash, req.Password) {
		logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(s.username)
	if err != nil {
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Username:  s.username,
	}, nil
}
