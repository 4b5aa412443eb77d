package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasibcs/uniadmin/internal/app/models"
	"github.com/nasibcs/uniadmin/internal/kvstore"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
)

// BookRepository handles book collection operations
type BookRepository struct {
	store *kvstore.Store
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(store *kvstore.Store) *BookRepository {
	return &BookRepository{store: store}
}

// List retrieves all books in insertion order
func (r *BookRepository) List(ctx context.Context) ([]models.Book, error) {
	return loadCollection[models.Book](ctx, r.store, kvstore.BucketBooks)
}

// ListByParents retrieves books filtered by faculty, department and
// semester. Empty filter values match everything.
func (r *BookRepository) ListByParents(ctx context.Context, facultyID, departmentID, semesterID string) ([]models.Book, error) {
	books, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := []models.Book{}
	for i := range books {
		if facultyID != "" && books[i].FacultyID != facultyID {
			continue
		}
		if departmentID != "" && books[i].DepartmentID != departmentID {
			continue
		}
		if semesterID != "" && books[i].SemesterID != semesterID {
			continue
		}
		filtered = append(filtered, books[i])
	}
	return filtered, nil
}

// FindByID retrieves a book by ID
func (r *BookRepository) FindByID(ctx context.Context, id string) (*models.Book, error) {
	books, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ID == id {
			return &books[i], nil
		}
	}
	return nil, apperrors.ErrBookNotFound
}

// Create assigns a new id, appends the book and persists the collection
func (r *BookRepository) Create(ctx context.Context, book *models.Book) error {
	books, err := r.List(ctx)
	if err != nil {
		return err
	}
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	books = append(books, *book)
	return saveCollection(ctx, r.store, kvstore.BucketBooks, books)
}

// Update replaces the book matching the record's id
func (r *BookRepository) Update(ctx context.Context, book *models.Book) error {
	books, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range books {
		if books[i].ID == book.ID {
			books[i] = *book
			return saveCollection(ctx, r.store, kvstore.BucketBooks, books)
		}
	}
	return apperrors.ErrBookNotFound
}

// Delete removes the book with the given id
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	books, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range books {
		if books[i].ID == id {
			books = append(books[:i], books[i+1:]...)
			return saveCollection(ctx, r.store, kvstore.BucketBooks, books)
		}
	}
	return apperrors.ErrBookNotFound
}

// DeleteByFaculty removes every book under a faculty and returns the
// removed records.
func (r *BookRepository) DeleteByFaculty(ctx context.Context, facultyID string) ([]models.Book, error) {
	return r.deleteWhere(ctx, func(b *models.Book) bool {
		return b.FacultyID == facultyID
	})
}

// DeleteByDepartment removes every book under a department and returns
// the removed records.
func (r *BookRepository) DeleteByDepartment(ctx context.Context, departmentID string) ([]models.Book, error) {
	return r.deleteWhere(ctx, func(b *models.Book) bool {
		return b.DepartmentID == departmentID
	})
}

// DeleteBySemester removes every book under a semester and returns the
// removed records.
func (r *BookRepository) DeleteBySemester(ctx context.Context, semesterID string) ([]models.Book, error) {
	return r.deleteWhere(ctx, func(b *models.Book) bool {
		return b.SemesterID == semesterID
	})
}

func (r *BookRepository) deleteWhere(ctx context.Context, match func(*models.Book) bool) ([]models.Book, error) {
	books, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	kept := books[:0:0]
	removed := []models.Book{}
	for i := range books {
		if match(&books[i]) {
			removed = append(removed, books[i])
		} else {
			kept = append(kept, books[i])
		}
	}
	if len(removed) == 0 {
		return removed, nil
	}
	if err := saveCollection(ctx, r.store, kvstore.BucketBooks, kept); err != nil {
		return nil, err
	}
	return removed, nil
}
