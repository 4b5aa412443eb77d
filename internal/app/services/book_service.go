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
	"github.com/nasibcs/uniadmin/internal/pkg/validation"
)

// BookService defines the interface for book-related operations
type BookService interface {
	CreateBook(ctx context.Context, req *dto.CreateBookRequest) (*models.Book, error)
	GetBookByID(ctx context.Context, id string) (*dto.BookResponse, error)
	GetAllBooks(ctx context.Context, facultyID, departmentID, semesterID string) ([]dto.BookResponse, error)
	UpdateBook(ctx context.Context, id string, req *dto.UpdateBookRequest) (*models.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

// bookServiceImpl implements the BookService interface
type bookServiceImpl struct {
	bookRepo       *repositories.BookRepository
	semesterRepo   *repositories.SemesterRepository
	departmentRepo *repositories.DepartmentRepository
	facultyRepo    *repositories.FacultyRepository
	bus            *events.Bus
}

// NewBookService creates a new book service instance
func NewBookService(
	bookRepo *repositories.BookRepository,
	semesterRepo *repositories.SemesterRepository,
	departmentRepo *repositories.DepartmentRepository,
	facultyRepo *repositories.FacultyRepository,
	bus *events.Bus,
) BookService {
	return &bookServiceImpl{
		bookRepo:       bookRepo,
		semesterRepo:   semesterRepo,
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
		bus:            bus,
	}
}

func validateBook(req *dto.CreateBookRequest) error {
	if req == nil {
		return apperrors.NewValidationError("book data is required")
	}
	missing := validation.MissingFields(validation.EntityBook, map[string]string{
		"name":   req.Name,
		"author": req.Author,
	})
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

func (s *bookServiceImpl) lookupNames(ctx context.Context) (facultyNames, departmentNames, semesterNames map[string]string, err error) {
	faculties, err := s.facultyRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	semesters, err := s.semesterRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	facultyNames = make(map[string]string, len(faculties))
	for i := range faculties {
		facultyNames[faculties[i].ID] = faculties[i].Name
	}
	departmentNames = make(map[string]string, len(departments))
	for i := range departments {
		departmentNames[departments[i].ID] = departments[i].Name
	}
	semesterNames = make(map[string]string, len(semesters))
	for i := range semesters {
		semesterNames[semesters[i].ID] = semesters[i].Name
	}
	return facultyNames, departmentNames, semesterNames, nil
}

func toBookResponse(b *models.Book, facultyNames, departmentNames, semesterNames map[string]string) dto.BookResponse {
	return dto.BookResponse{
		ID:              b.ID,
		FacultyID:       b.FacultyID,
		FacultyName:     facultyNames[b.FacultyID],
		DepartmentID:    b.DepartmentID,
		DepartmentName:  departmentNames[b.DepartmentID],
		SemesterID:      b.SemesterID,
		SemesterName:    semesterNames[b.SemesterID],
		Name:            b.Name,
		Author:          b.Author,
		Description:     b.Description,
		Thumbnail:       b.Thumbnail,
		ISBN:            b.ISBN,
		Edition:         b.Edition,
		PublicationYear: b.PublicationYear,
	}
}

// CreateBook creates a new book
func (s *bookServiceImpl) CreateBook(ctx context.Context, req *dto.CreateBookRequest) (*models.Book, error) {
	if err := validateBook(req); err != nil {
		return nil, err
	}

	book := &models.Book{
		FacultyID:       req.FacultyID,
		DepartmentID:    req.DepartmentID,
		SemesterID:      req.SemesterID,
		Name:            req.Name,
		Author:          req.Author,
		Description:     req.Description,
		Thumbnail:       req.Thumbnail,
		ISBN:            req.ISBN,
		Edition:         req.Edition,
		PublicationYear: req.PublicationYear,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("error creating book: %w", err)
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketBooks, Action: events.ActionCreated, ID: book.ID})
	return book, nil
}

// GetBookByID retrieves a book with parent names resolved
func (s *bookServiceImpl) GetBookByID(ctx context.Context, id string) (*dto.BookResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("book id is required")
	}
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	facultyNames, departmentNames, semesterNames, err := s.lookupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving parent names: %w", err)
	}
	resp := toBookResponse(book, facultyNames, departmentNames, semesterNames)
	return &resp, nil
}

// GetAllBooks retrieves books scoped by the optional faculty, department
// and semester filters, in insertion order.
func (s *bookServiceImpl) GetAllBooks(ctx context.Context, facultyID, departmentID, semesterID string) ([]dto.BookResponse, error) {
	books, err := s.bookRepo.ListByParents(ctx, facultyID, departmentID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving books: %w", err)
	}

	facultyNames, departmentNames, semesterNames, err := s.lookupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving parent names: %w", err)
	}

	responses := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, toBookResponse(&books[i], facultyNames, departmentNames, semesterNames))
	}
	return responses, nil
}

// UpdateBook updates an existing book, keeping its id
func (s *bookServiceImpl) UpdateBook(ctx context.Context, id string, req *dto.UpdateBookRequest) (*models.Book, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("book id is required")
	}
	if err := validateBook(req); err != nil {
		return nil, err
	}

	book := &models.Book{
		ID:              id,
		FacultyID:       req.FacultyID,
		DepartmentID:    req.DepartmentID,
		SemesterID:      req.SemesterID,
		Name:            req.Name,
		Author:          req.Author,
		Description:     req.Description,
		Thumbnail:       req.Thumbnail,
		ISBN:            req.ISBN,
		Edition:         req.Edition,
		PublicationYear: req.PublicationYear,
	}
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketBooks, Action: events.ActionUpdated, ID: id})
	return book, nil
}

// DeleteBook deletes a book; there are no child records to cascade
func (s *bookServiceImpl) DeleteBook(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("book id is required")
	}
	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: kvstore.BucketBooks, Action: events.ActionDeleted, ID: id})
	return nil
}
