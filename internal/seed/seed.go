package seed

import (
	"context"

	"github.com/rs/zerolog"

	appModels "github.com/nasibcs/uniadmin/internal/app/models"
	appRepos "github.com/nasibcs/uniadmin/internal/app/repositories"
)

// CreateDefaultData seeds an admin profile, theme and a starter faculty
// tree into an empty store so a fresh install has something to show.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	faculties, err := repos.FacultyRepository.List(ctx)
	if err != nil {
		return err
	}
	if len(faculties) > 0 {
		// Store already has data, nothing to seed
		return nil
	}

	lgr.Info().Msg("Empty store detected, creating default data...")

	profile, err := repos.SettingsRepository.GetProfile(ctx)
	if err != nil {
		return err
	}
	if profile == nil {
		if err := repos.SettingsRepository.SaveProfile(ctx, &appModels.AdminProfile{
			Username: "nasib",
			Email:    "admin@uniadmin.app",
		}); err != nil {
			lgr.Error().Err(err).Msg("Error creating default admin profile")
			return err
		}
		if err := repos.SettingsRepository.SaveTheme(ctx, appModels.ThemeLight); err != nil {
			lgr.Error().Err(err).Msg("Error saving default theme")
			return err
		}
	}

	faculty := &appModels.Faculty{
		Name:            "Faculty of Engineering",
		Dean:            "Dr. Jane Smith",
		EstablishedYear: "1985",
		Description:     "Engineering programs across computing and electronics",
		Logo:            "",
	}
	if err := repos.FacultyRepository.Create(ctx, faculty); err != nil {
		lgr.Error().Err(err).Msg("Error creating default faculty")
		return err
	}

	departments := []appModels.Department{
		{
			FacultyID:       faculty.ID,
			Name:            "Computer Science",
			Dean:            "Dr. Alan Roberts",
			EstablishedYear: "1992",
			Semesters:       "8",
			Description:     "Computer science and software engineering",
		},
		{
			FacultyID:       faculty.ID,
			Name:            "Electrical Engineering",
			Dean:            "Dr. Maria Lopez",
			EstablishedYear: "1988",
			Semesters:       "8",
			Description:     "Electrical and electronics engineering",
		},
	}
	for i := range departments {
		if err := repos.DepartmentRepository.Create(ctx, &departments[i]); err != nil {
			lgr.Error().Err(err).Str("department", departments[i].Name).Msg("Error creating default department")
			return err
		}
	}

	lgr.Info().
		Str("faculty", faculty.Name).
		Int("departments", len(departments)).
		Msg("Default data created")
	return nil
}
