package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nasibcs/uniadmin/internal/app/models"
	"github.com/nasibcs/uniadmin/internal/kvstore"
	"github.com/nasibcs/uniadmin/internal/pkg/logger"
)

// SettingsRepository handles the singleton admin profile and theme buckets.
type SettingsRepository struct {
	store *kvstore.Store
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(store *kvstore.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// GetProfile retrieves the admin profile, or nil if none is stored yet.
// A malformed payload is treated as absent, same as collections.
func (r *SettingsRepository) GetProfile(ctx context.Context) (*models.AdminProfile, error) {
	payload, err := r.store.Load(ctx, kvstore.BucketProfile)
	if err != nil {
		return nil, fmt.Errorf("error loading admin profile: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}
	var profile models.AdminProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		logger.Warn().Err(err).Msg("Discarding malformed admin profile payload")
		return nil, nil
	}
	return &profile, nil
}

// SaveProfile overwrites the stored admin profile
func (r *SettingsRepository) SaveProfile(ctx context.Context, profile *models.AdminProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("error encoding admin profile: %w", err)
	}
	return r.store.Save(ctx, kvstore.BucketProfile, payload)
}

// GetTheme retrieves the stored theme, defaulting to light
func (r *SettingsRepository) GetTheme(ctx context.Context) (string, error) {
	payload, err := r.store.Load(ctx, kvstore.BucketTheme)
	if err != nil {
		return "", fmt.Errorf("error loading theme: %w", err)
	}
	if len(payload) == 0 {
		return models.ThemeLight, nil
	}
	var theme string
	if err := json.Unmarshal(payload, &theme); err != nil {
		logger.Warn().Err(err).Msg("Discarding malformed theme payload")
		return models.ThemeLight, nil
	}
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return models.ThemeLight, nil
	}
	return theme, nil
}

// SaveTheme overwrites the stored theme
func (r *SettingsRepository) SaveTheme(ctx context.Context, theme string) error {
	payload, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("error encoding theme: %w", err)
	}
	return r.store.Save(ctx, kvstore.BucketTheme, payload)
}
