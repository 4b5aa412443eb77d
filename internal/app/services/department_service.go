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

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	GetDepartmentByID(ctx context.Context, id string) (*dto.DepartmentResponse, error)
	GetAllDepartments(ctx context.Context, facultyID string) ([]dto.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id string) error
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo *repositories.DepartmentRepository
	facultyRepo    *repositories.FacultyRepository
	teacherRepo    *repositories.TeacherRepository
	semesterRepo   *repositories.SemesterRepository
	bookRepo       *repositories.BookRepository
	bus            *events.Bus
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(
	departmentRepo *repositories.DepartmentRepository,
	facultyRepo *repositories.FacultyRepository,
	teacherRepo *repositories.TeacherRepository,
	semesterRepo *repositories.SemesterRepository,
	bookRepo *repositories.BookRepository,
	bus *events.Bus,
) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
		teacherRepo:    teacherRepo,
		semesterRepo:   semesterRepo,
		bookRepo:       bookRepo,
		bus:            bus,
	}
}

func validateDepartment(req *dto.CreateDepartmentRequest) error {
	if req == nil {
		return apperrors.NewValidationError("department data is required")
	}
	missing := validation.MissingFields(validation.EntityDepartment, map[string]string{
		"name":            req.Name,
		"dean":            req.Dean,
		"establishedYear": req.EstablishedYear,
		"facultyId":       req.FacultyID,
	})
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// toDepartmentResponse resolves the parent faculty name through the
// given lookup instead of storing it on the record.
func toDepartmentResponse(d *models.Department, facultyNames map[string]string) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:              d.ID,
		FacultyID:       d.FacultyID,
		FacultyName:     facultyNames[d.FacultyID],
		Name:            d.Name,
		Dean:            d.Dean,
		EstablishedYear: d.EstablishedYear,
		Semesters:       d.Semesters,
		Description:     d.Description,
	}
}

func (s *departmentServiceImpl) facultyNames(ctx context.Context) (map[string]string, error) {
	faculties, err := s.facultyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(faculties))
	for i := range faculties {
		names[faculties[i].ID] = faculties[i].Name
	}
	return names, nil
}

// CreateDepartment creates a new department
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if err := validateDepartment(req); err != nil {
		return nil, err
	}

	department := &models.Department{
		FacultyID:       req.FacultyID,
		Name:            req.Name,
		Dean:            req.Dean,
		EstablishedYear: req.EstablishedYear,
		Semesters:       req.Semesters,
		Description:     req.Description,
	}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketDepartments, Action: events.ActionCreated, ID: department.ID})
	return department, nil
}

// GetDepartmentByID retrieves a department with its faculty name resolved
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id string) (*dto.DepartmentResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("department id is required")
	}
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	names, err := s.facultyNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving faculty names: %w", err)
	}
	resp := toDepartmentResponse(department, names)
	return &resp, nil
}

// GetAllDepartments retrieves departments, optionally scoped to a
// faculty, in insertion order.
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context, facultyID string) ([]dto.DepartmentResponse, error) {
	var departments []models.Department
	var err error
	if facultyID != "" {
		departments, err = s.departmentRepo.ListByFaculty(ctx, facultyID)
	} else {
		departments, err = s.departmentRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}

	names, err := s.facultyNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving faculty names: %w", err)
	}

	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, toDepartmentResponse(&departments[i], names))
	}
	return responses, nil
}

// UpdateDepartment updates an existing department, keeping its id
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("department id is required")
	}
	if err := validateDepartment(req); err != nil {
		return nil, err
	}

	department := &models.Department{
		ID:              id,
		FacultyID:       req.FacultyID,
		Name:            req.Name,
		Dean:            req.Dean,
		EstablishedYear: req.EstablishedYear,
		Semesters:       req.Semesters,
		Description:     req.Description,
	}
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketDepartments, Action: events.ActionUpdated, ID: id})
	return department, nil
}

// DeleteDepartment deletes a department and cascades to its teachers,
// semesters and books. Same non-atomic sequence as the faculty cascade.
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("department id is required")
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: kvstore.BucketDepartments, Action: events.ActionDeleted, ID: id})

	teachers, err := s.teacherRepo.DeleteByDepartments(ctx, []string{id})
	if err != nil {
		return fmt.Errorf("error cascading department delete to teachers: %w", err)
	}
	for i := range teachers {
		s.bus.Publish(events.Event{Collection: kvstore.BucketTeachers, Action: events.ActionDeleted, ID: teachers[i].ID})
	}

	semesters, err := s.semesterRepo.DeleteByDepartment(ctx, id)
	if err != nil {
		return fmt.Errorf("error cascading department delete to semesters: %w", err)
	}
	for i := range semesters {
		s.bus.Publish(events.Event{Collection: kvstore.BucketSemesters, Action: events.ActionDeleted, ID: semesters[i].ID})
	}

	books, err := s.bookRepo.DeleteByDepartment(ctx, id)
	if err != nil {
		return fmt.Errorf("error cascading department delete to books: %w", err)
	}
	for i := range books {
		s.bus.Publish(events.Event{Collection: kvstore.BucketBooks, Action: events.ActionDeleted, ID: books[i].ID})
	}

	logger.Info().
		Str("departmentID", id).
		Int("teachers", len(teachers)).
		Int("semesters", len(semesters)).
		Int("books", len(books)).
		Msg("Department deleted with cascade")
	return nil
}
