package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasibcs/uniadmin/internal/app/models"
	"github.com/nasibcs/uniadmin/internal/kvstore"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
)

// SemesterRepository handles semester collection operations
type SemesterRepository struct {
	store *kvstore.Store
}

// NewSemesterRepository creates a new SemesterRepository
func NewSemesterRepository(store *kvstore.Store) *SemesterRepository {
	return &SemesterRepository{store: store}
}

// List retrieves all semesters in insertion order
func (r *SemesterRepository) List(ctx context.Context) ([]models.Semester, error) {
	return loadCollection[models.Semester](ctx, r.store, kvstore.BucketSemesters)
}

// ListByParents retrieves semesters filtered by faculty and department.
// Empty filter values match everything, so callers can scope by faculty
// alone or by faculty and department together.
func (r *SemesterRepository) ListByParents(ctx context.Context, facultyID, departmentID string) ([]models.Semester, error) {
	semesters, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := []models.Semester{}
	for i := range semesters {
		if facultyID != "" && semesters[i].FacultyID != facultyID {
			continue
		}
		if departmentID != "" && semesters[i].DepartmentID != departmentID {
			continue
		}
		filtered = append(filtered, semesters[i])
	}
	return filtered, nil
}

// FindByID retrieves a semester by ID
func (r *SemesterRepository) FindByID(ctx context.Context, id string) (*models.Semester, error) {
	semesters, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range semesters {
		if semesters[i].ID == id {
			return &semesters[i], nil
		}
	}
	return nil, apperrors.ErrSemesterNotFound
}

// Create assigns a new id, appends the semester and persists the collection
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	semesters, err := r.List(ctx)
	if err != nil {
		return err
	}
	if semester.ID == "" {
		semester.ID = uuid.New().String()
	}
	semesters = append(semesters, *semester)
	return saveCollection(ctx, r.store, kvstore.BucketSemesters, semesters)
}

// Update replaces the semester matching the record's id
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	semesters, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range semesters {
		if semesters[i].ID == semester.ID {
			semesters[i] = *semester
			return saveCollection(ctx, r.store, kvstore.BucketSemesters, semesters)
		}
	}
	return apperrors.ErrSemesterNotFound
}

// Delete removes the semester with the given id
func (r *SemesterRepository) Delete(ctx context.Context, id string) error {
	semesters, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range semesters {
		if semesters[i].ID == id {
			semesters = append(semesters[:i], semesters[i+1:]...)
			return saveCollection(ctx, r.store, kvstore.BucketSemesters, semesters)
		}
	}
	return apperrors.ErrSemesterNotFound
}

// DeleteByFaculty removes every semester of a faculty and returns the
// removed records.
func (r *SemesterRepository) DeleteByFaculty(ctx context.Context, facultyID string) ([]models.Semester, error) {
	return r.deleteWhere(ctx, func(s *models.Semester) bool {
		return s.FacultyID == facultyID
	})
}

// DeleteByDepartment removes every semester of a department and returns
// the removed records.
func (r *SemesterRepository) DeleteByDepartment(ctx context.Context, departmentID string) ([]models.Semester, error) {
	return r.deleteWhere(ctx, func(s *models.Semester) bool {
		return s.DepartmentID == departmentID
	})
}

func (r *SemesterRepository) deleteWhere(ctx context.Context, match func(*models.Semester) bool) ([]models.Semester, error) {
	semesters, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	kept := semesters[:0:0]
	removed := []models.Semester{}
	for i := range semesters {
		if match(&semesters[i]) {
			removed = append(removed, semesters[i])
		} else {
			kept = append(kept, semesters[i])
		}
	}
	if len(removed) == 0 {
		return removed, nil
	}
	if err := saveCollection(ctx, r.store, kvstore.BucketSemesters, kept); err != nil {
		return nil, err
	}
	return removed, nil
}
