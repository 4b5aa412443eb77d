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
	"github.com/nasibcs/uniadmin/internal/pkg/logger"
	"github.com/nasibcs/uniadmin/internal/pkg/validation"
)

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	GetFacultyByID(ctx context.Context, id string) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]models.Faculty, error)
	UpdateFaculty(ctx context.Context, id string, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id string) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo    *repositories.FacultyRepository
	departmentRepo *repositories.DepartmentRepository
	teacherRepo    *repositories.TeacherRepository
	semesterRepo   *repositories.SemesterRepository
	bookRepo       *repositories.BookRepository
	bus            *events.Bus
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(
	facultyRepo *repositories.FacultyRepository,
	departmentRepo *repositories.DepartmentRepository,
	teacherRepo *repositories.TeacherRepository,
	semesterRepo *repositories.SemesterRepository,
	bookRepo *repositories.BookRepository,
	bus *events.Bus,
) FacultyService {
	return &facultyServiceImpl{
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		teacherRepo:    teacherRepo,
		semesterRepo:   semesterRepo,
		bookRepo:       bookRepo,
		bus:            bus,
	}
}

// validateFaculty checks required fields before any store mutation
func validateFaculty(req *dto.CreateFacultyRequest) error {
	if req == nil {
		return apperrors.NewValidationError("faculty data is required")
	}
	missing := validation.MissingFields(validation.EntityFaculty, map[string]string{
		"name":            req.Name,
		"dean":            req.Dean,
		"establishedYear": req.EstablishedYear,
		"description":     req.Description,
		"logo":            req.Logo,
	})
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// CreateFaculty creates a new faculty
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	if err := validateFaculty(req); err != nil {
		return nil, err
	}

	exists, err := s.facultyRepo.ExistsByName(ctx, req.Name, "")
	if err != nil {
		return nil, fmt.Errorf("error checking faculty name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrFacultyAlreadyExists
	}

	faculty := &models.Faculty{
		Name:            req.Name,
		Dean:            req.Dean,
		EstablishedYear: req.EstablishedYear,
		Description:     req.Description,
		Logo:            req.Logo,
	}
	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketFaculties, Action: events.ActionCreated, ID: faculty.ID})
	return faculty, nil
}

// GetFacultyByID retrieves a faculty by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id string) (*models.Faculty, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("faculty id is required")
	}
	return s.facultyRepo.FindByID(ctx, id)
}

// GetAllFaculties retrieves all faculties
func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]models.Faculty, error) {
	faculties, err := s.facultyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculties: %w", err)
	}
	return faculties, nil
}

// UpdateFaculty updates an existing faculty, keeping its id
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, id string, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("faculty id is required")
	}
	if err := validateFaculty(req); err != nil {
		return nil, err
	}

	exists, err := s.facultyRepo.ExistsByName(ctx, req.Name, id)
	if err != nil {
		return nil, fmt.Errorf("error checking faculty name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrFacultyAlreadyExists
	}

	faculty := &models.Faculty{
		ID:              id,
		Name:            req.Name,
		Dean:            req.Dean,
		EstablishedYear: req.EstablishedYear,
		Description:     req.Description,
		Logo:            req.Logo,
	}
	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketFaculties, Action: events.ActionUpdated, ID: id})
	return faculty, nil
}

// DeleteFaculty deletes a faculty and cascades through its departments,
// their teachers, its semesters and their books. The cascade is a
// sequence of per-collection saves, not a transaction: a crash midway
// can leave orphans behind, which the next full delete cleans up.
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("faculty id is required")
	}

	if err := s.facultyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: kvstore.BucketFaculties, Action: events.ActionDeleted, ID: id})

	departments, err := s.departmentRepo.DeleteByFaculty(ctx, id)
	if err != nil {
		return fmt.Errorf("error cascading faculty delete to departments: %w", err)
	}
	departmentIDs := make([]string, 0, len(departments))
	for i := range departments {
		departmentIDs = append(departmentIDs, departments[i].ID)
		s.bus.Publish(events.Event{Collection: kvstore.BucketDepartments, Action: events.ActionDeleted, ID: departments[i].ID})
	}

	teachers, err := s.teacherRepo.DeleteByDepartments(ctx, departmentIDs)
	if err != nil {
		return fmt.Errorf("error cascading faculty delete to teachers: %w", err)
	}
	for i := range teachers {
		s.bus.Publish(events.Event{Collection: kvstore.BucketTeachers, Action: events.ActionDeleted, ID: teachers[i].ID})
	}

	semesters, err := s.semesterRepo.DeleteByFaculty(ctx, id)
	if err != nil {
		return fmt.Errorf("error cascading faculty delete to semesters: %w", err)
	}
	for i := range semesters {
		s.bus.Publish(events.Event{Collection: kvstore.BucketSemesters, Action: events.ActionDeleted, ID: semesters[i].ID})
	}

	books, err := s.bookRepo.DeleteByFaculty(ctx, id)
	if err != nil {
		return fmt.Errorf("error cascading faculty delete to books: %w", err)
	}
	for i := range books {
		s.bus.Publish(events.Event{Collection: kvstore.BucketBooks, Action: events.ActionDeleted, ID: books[i].ID})
	}

	logger.Info().
		Str("facultyID", id).
		Int("departments", len(departments)).
		Int("teachers", len(teachers)).
		Int("semesters", len(semesters)).
		Int("books", len(books)).
		Msg("Faculty deleted with cascade")
	return nil
}
