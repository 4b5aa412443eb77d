package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nasibcs/uniadmin/internal/app/models"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/repositories"
	"github.com/nasibcs/uniadmin/internal/events"
	"github.com/nasibcs/uniadmin/internal/kvstore"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
)

// SettingsService defines the interface for admin profile and theme
type SettingsService interface {
	GetProfile(ctx context.Context) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	GetTheme(ctx context.Context) (string, error)
	UpdateTheme(ctx context.Context, theme string) error
}

// settingsServiceImpl implements the SettingsService interface
type settingsServiceImpl struct {
	settingsRepo *repositories.SettingsRepository
	bus          *events.Bus
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo *repositories.SettingsRepository, bus *events.Bus) SettingsService {
	return &settingsServiceImpl{
		settingsRepo: settingsRepo,
		bus:          bus,
	}
}

// GetProfile retrieves the stored admin profile
func (s *settingsServiceImpl) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	profile, err := s.settingsRepo.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin profile: %w", err)
	}
	if profile == nil {
		return nil, apperrors.NewResourceNotFoundError("admin profile not set")
	}
	return &dto.ProfileResponse{
		Username:       profile.Username,
		Email:          profile.Email,
		ProfilePicture: profile.ProfilePicture,
	}, nil
}

// UpdateProfile overwrites the stored admin profile
func (s *settingsServiceImpl) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if req == nil || strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("username and email are required")
	}

	profile := &models.AdminProfile{
		Username:       req.Username,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	}
	if err := s.settingsRepo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("error saving admin profile: %w", err)
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketProfile, Action: events.ActionUpdated, ID: profile.Username})
	return &dto.ProfileResponse{
		Username:       profile.Username,
		Email:          profile.Email,
		ProfilePicture: profile.ProfilePicture,
	}, nil
}

// GetTheme retrieves the stored theme
func (s *settingsServiceImpl) GetTheme(ctx context.Context) (string, error) {
	theme, err := s.settingsRepo.GetTheme(ctx)
	if err != nil {
		return "", fmt.Errorf("error retrieving theme: %w", err)
	}
	return theme, nil
}

// UpdateTheme stores a new theme value
func (s *settingsServiceImpl) UpdateTheme(ctx context.Context, theme string) error {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return apperrors.NewValidationError("theme must be light or dark")
	}
	if err := s.settingsRepo.SaveTheme(ctx, theme); err != nil {
		return fmt.Errorf("error saving theme: %w", err)
	}
	s.bus.Publish(events.Event{Collection: kvstore.BucketTheme, Action: events.ActionUpdated, ID: theme})
	return nil
}
