package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nasibcs/uniadmin/internal/app/models"
	"github.com/nasibcs/uniadmin/internal/kvstore"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
)

// FacultyRepository handles faculty collection operations
type FacultyRepository struct {
	store *kvstore.Store
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(store *kvstore.Store) *FacultyRepository {
	return &FacultyRepository{store: store}
}

// List retrieves all faculties in insertion order
func (r *FacultyRepository) List(ctx context.Context) ([]models.Faculty, error) {
	return loadCollection[models.Faculty](ctx, r.store, kvstore.BucketFaculties)
}

// FindByID retrieves a faculty by ID
func (r *FacultyRepository) FindByID(ctx context.Context, id string) (*models.Faculty, error) {
	faculties, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range faculties {
		if faculties[i].ID == id {
			return &faculties[i], nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

// Create assigns a new id, appends the faculty and persists the collection
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	faculties, err := r.List(ctx)
	if err != nil {
		return err
	}
	if faculty.ID == "" {
		faculty.ID = uuid.New().String()
	}
	faculties = append(faculties, *faculty)
	return saveCollection(ctx, r.store, kvstore.BucketFaculties, faculties)
}

// Update replaces the faculty matching the record's id
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	faculties, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range faculties {
		if faculties[i].ID == faculty.ID {
			faculties[i] = *faculty
			return saveCollection(ctx, r.store, kvstore.BucketFaculties, faculties)
		}
	}
	return apperrors.ErrFacultyNotFound
}

// Delete removes the faculty with the given id
func (r *FacultyRepository) Delete(ctx context.Context, id string) error {
	faculties, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range faculties {
		if faculties[i].ID == id {
			faculties = append(faculties[:i], faculties[i+1:]...)
			return saveCollection(ctx, r.store, kvstore.BucketFaculties, faculties)
		}
	}
	return apperrors.ErrFacultyNotFound
}

// ExistsByName reports whether another faculty already uses the name,
// compared case-insensitively on trimmed values. excludeID lets an
// update keep its own name.
func (r *FacultyRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	faculties, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range faculties {
		if faculties[i].ID == excludeID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(faculties[i].Name)) == needle {
			return true, nil
		}
	}
	return false, nil
}
