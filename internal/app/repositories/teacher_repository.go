package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasibcs/uniadmin/internal/app/models"
	"github.com/nasibcs/uniadmin/internal/kvstore"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
)

// TeacherRepository handles teacher collection operations
type TeacherRepository struct {
	store *kvstore.Store
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(store *kvstore.Store) *TeacherRepository {
	return &TeacherRepository{store: store}
}

// List retrieves all teachers in insertion order
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	return loadCollection[models.Teacher](ctx, r.store, kvstore.BucketTeachers)
}

// ListByDepartment retrieves the teachers of a department in insertion order
func (r *TeacherRepository) ListByDepartment(ctx context.Context, departmentID string) ([]models.Teacher, error) {
	teachers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := []models.Teacher{}
	for i := range teachers {
		if teachers[i].DepartmentID == departmentID {
			filtered = append(filtered, teachers[i])
		}
	}
	return filtered, nil
}

// FindByID retrieves a teacher by ID
func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	teachers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teachers {
		if teachers[i].ID == id {
			return &teachers[i], nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

// Create assigns a new id, appends the teacher and persists the collection
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	if teacher.ID == "" {
		teacher.ID = uuid.New().String()
	}
	teachers = append(teachers, *teacher)
	return saveCollection(ctx, r.store, kvstore.BucketTeachers, teachers)
}

// Update replaces the teacher matching the record's id
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range teachers {
		if teachers[i].ID == teacher.ID {
			teachers[i] = *teacher
			return saveCollection(ctx, r.store, kvstore.BucketTeachers, teachers)
		}
	}
	return apperrors.ErrTeacherNotFound
}

// Delete removes the teacher with the given id
func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range teachers {
		if teachers[i].ID == id {
			teachers = append(teachers[:i], teachers[i+1:]...)
			return saveCollection(ctx, r.store, kvstore.BucketTeachers, teachers)
		}
	}
	return apperrors.ErrTeacherNotFound
}

// DeleteByDepartments removes every teacher belonging to any of the
// given departments and returns the removed records.
func (r *TeacherRepository) DeleteByDepartments(ctx context.Context, departmentIDs []string) ([]models.Teacher, error) {
	if len(departmentIDs) == 0 {
		return []models.Teacher{}, nil
	}
	ids := make(map[string]struct{}, len(departmentIDs))
	for _, id := range departmentIDs {
		ids[id] = struct{}{}
	}

	teachers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	kept := teachers[:0:0]
	removed := []models.Teacher{}
	for i := range teachers {
		if _, gone := ids[teachers[i].DepartmentID]; gone {
			removed = append(removed, teachers[i])
		} else {
			kept = append(kept, teachers[i])
		}
	}
	if len(removed) == 0 {
		return removed, nil
	}
	if err := saveCollection(ctx, r.store, kvstore.BucketTeachers, kept); err != nil {
		return nil, err
	}
	return removed, nil
}
