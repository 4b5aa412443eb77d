package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasibcs/uniadmin/internal/app/models"
	"github.com/nasibcs/uniadmin/internal/kvstore"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
)

// DepartmentRepository handles department collection operations
type DepartmentRepository struct {
	store *kvstore.Store
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(store *kvstore.Store) *DepartmentRepository {
	return &DepartmentRepository{store: store}
}

// List retrieves all departments in insertion order
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	return loadCollection[models.Department](ctx, r.store, kvstore.BucketDepartments)
}

// ListByFaculty retrieves the departments of a faculty, preserving
// insertion order. An unknown faculty id yields an empty slice.
func (r *DepartmentRepository) ListByFaculty(ctx context.Context, facultyID string) ([]models.Department, error) {
	departments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := []models.Department{}
	for i := range departments {
		if departments[i].FacultyID == facultyID {
			filtered = append(filtered, departments[i])
		}
	}
	return filtered, nil
}

// FindByID retrieves a department by ID
func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*models.Department, error) {
	departments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range departments {
		if departments[i].ID == id {
			return &departments[i], nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

// Create assigns a new id, appends the department and persists the collection
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	departments, err := r.List(ctx)
	if err != nil {
		return err
	}
	if department.ID == "" {
		department.ID = uuid.New().String()
	}
	departments = append(departments, *department)
	return saveCollection(ctx, r.store, kvstore.BucketDepartments, departments)
}

// Update replaces the department matching the record's id
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	departments, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range departments {
		if departments[i].ID == department.ID {
			departments[i] = *department
			return saveCollection(ctx, r.store, kvstore.BucketDepartments, departments)
		}
	}
	return apperrors.ErrDepartmentNotFound
}

// Delete removes the department with the given id
func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	departments, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range departments {
		if departments[i].ID == id {
			departments = append(departments[:i], departments[i+1:]...)
			return saveCollection(ctx, r.store, kvstore.BucketDepartments, departments)
		}
	}
	return apperrors.ErrDepartmentNotFound
}

// DeleteByFaculty removes every department of a faculty and returns the
// removed records so the caller can cascade to their children.
func (r *DepartmentRepository) DeleteByFaculty(ctx context.Context, facultyID string) ([]models.Department, error) {
	departments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	kept := departments[:0:0]
	removed := []models.Department{}
	for i := range departments {
		if departments[i].FacultyID == facultyID {
			removed = append(removed, departments[i])
		} else {
			kept = append(kept, departments[i])
		}
	}
	if len(removed) == 0 {
		return removed, nil
	}
	if err := saveCollection(ctx, r.store, kvstore.BucketDepartments, kept); err != nil {
		return nil, err
	}
	return removed, nil
}
