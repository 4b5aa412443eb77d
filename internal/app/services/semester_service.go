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

// SemesterService defines the interface for semester-related operations
type SemesterService interface {
	CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (*models.Semester, error)
	GetSemesterByID(ctx context.Context, id string) (*dto.SemesterResponse, error)
	GetAllSemesters(ctx context.Context, facultyID, departmentID string) ([]dto.SemesterResponse, error)
	UpdateSemester(ctx context.Context, id string, req *dto.UpdateSemesterRequest) (*models.Semester, error)
	DeleteSemester(ctx context.Context, id string) error
}

// semesterServiceImpl implements the SemesterService interface
type semesterServiceImpl struct {
	semesterRepo   *repositories.SemesterRepository
	departmentRepo *repositories.DepartmentRepository
	facultyRepo    *repositories.FacultyRepository
	bookRepo       *repositories.BookRepository
	bus            *events.Bus
}

// NewSemesterService creates a new semester service instance
func NewSemesterService(
	semesterRepo *repositories.SemesterRepository,
	departmentRepo *repositories.DepartmentRepository,
	facultyRepo *repositories.FacultyRepository,
	bookRepo *repositories.BookRepository,
	bus *events.Bus,
) SemesterService {
	return &semesterServiceImpl{
		semesterRepo:   semesterRepo,
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
		bookRepo:       bookRepo,
		bus:            bus,
	}
}

func validateSemester(req *dto.CreateSemesterRequest) error {
	if req == nil {
		return apperrors.NewValidationError("semester data is required")
	}
	missing := validation.MissingFields(validation.EntitySemester, map[string]string{
		"name":         req.Name,
		"year":         req.Year,
		"semester":     req.Season,
		"facultyId":    req.FacultyID,
		"departmentId": req.DepartmentID,
	})
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

func (s *semesterServiceImpl) lookupNames(ctx context.Context) (facultyNames, departmentNames map[string]string, err error) {
	faculties, err := s.facultyRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	facultyNames = make(map[string]string, len(faculties))
	for i := range faculties {
		facultyNames[faculties[i].ID] = faculties[i].Name
	}
	departmentNames = make(map[string]string, len(departments))
	for i := range departments {
		departmentNames[departments[i].ID] = departments[i].Name
	}
	return facultyNames, departmentNames, nil
}

func toSemesterResponse(sem *models.Semester, facultyNames, departmentNames map[string]string) dto.SemesterResponse {
	return dto.SemesterResponse{
		ID:             sem.ID,
		FacultyID:      sem.FacultyID,
		FacultyName:    facultyNames[sem.FacultyID],
		DepartmentID:   sem.DepartmentID,
		DepartmentName: departmentNames[sem.DepartmentID],
		Name:           sem.Name,
		Year:           sem.Year,
		Season:         sem.Season,
		Books:          sem.Books,
		Description:    sem.Description,
		StartDate:      sem.StartDate,
		EndDate:        sem.EndDate,
	}
}

// CreateSemester creates a new semester
func (s *semesterServiceImpl) CreateSemester(ctx context.Context, req *dto.CreateSemesterRequest) (*models.Semester, error) {
	if err := validateSemester(req); err != nil {
		return nil, err
	}

	semester := &models.Semester{
		FacultyID:    req.FacultyID,
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Year:         req.Year,
		Season:       req.Season,
		Books:        req.Books,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if semester.Books == nil {
		semester.Books = []string{}
	}
	if err := s.semesterRepo.Create(ctx, semester); err != nil {
		return nil, fmt.Errorf("error creating semester: %w", err)
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketSemesters, Action: events.ActionCreated, ID: semester.ID})
	return semester, nil
}

// GetSemesterByID retrieves a semester with parent names resolved
func (s *semesterServiceImpl) GetSemesterByID(ctx context.Context, id string) (*dto.SemesterResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("semester id is required")
	}
	semester, err := s.semesterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	facultyNames, departmentNames, err := s.lookupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving parent names: %w", err)
	}
	resp := toSemesterResponse(semester, facultyNames, departmentNames)
	return &resp, nil
}

// GetAllSemesters retrieves semesters scoped by the optional faculty and
// department filters, in insertion order.
func (s *semesterServiceImpl) GetAllSemesters(ctx context.Context, facultyID, departmentID string) ([]dto.SemesterResponse, error) {
	semesters, err := s.semesterRepo.ListByParents(ctx, facultyID, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving semesters: %w", err)
	}

	facultyNames, departmentNames, err := s.lookupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving parent names: %w", err)
	}

	responses := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		responses = append(responses, toSemesterResponse(&semesters[i], facultyNames, departmentNames))
	}
	return responses, nil
}

// UpdateSemester updates an existing semester, keeping its id
func (s *semesterServiceImpl) UpdateSemester(ctx context.Context, id string, req *dto.UpdateSemesterRequest) (*models.Semester, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("semester id is required")
	}
	if err := validateSemester(req); err != nil {
		return nil, err
	}

	semester := &models.Semester{
		ID:           id,
		FacultyID:    req.FacultyID,
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Year:         req.Year,
		Season:       req.Season,
		Books:        req.Books,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if semester.Books == nil {
		semester.Books = []string{}
	}
	if err := s.semesterRepo.Update(ctx, semester); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketSemesters, Action: events.ActionUpdated, ID: id})
	return semester, nil
}

// DeleteSemester deletes a semester and cascades to its books
func (s *semesterServiceImpl) DeleteSemester(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("semester id is required")
	}

	if err := s.semesterRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: kvstore.BucketSemesters, Action: events.ActionDeleted, ID: id})

	books, err := s.bookRepo.DeleteBySemester(ctx, id)
	if err != nil {
		return fmt.Errorf("error cascading semester delete to books: %w", err)
	}
	for i := range books {
		s.bus.Publish(events.Event{Collection: kvstore.BucketBooks, Action: events.ActionDeleted, ID: books[i].ID})
	}

	logger.Info().
		Str("semesterID", id).
		Int("books", len(books)).
		Msg("Semester deleted with cascade")
	return nil
}
