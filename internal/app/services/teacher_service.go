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

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id string) (*dto.TeacherResponse, error)
	GetAllTeachers(ctx context.Context, departmentID string) ([]dto.TeacherResponse, error)
	UpdateTeacher(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id string) error
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teacherRepo    *repositories.TeacherRepository
	departmentRepo *repositories.DepartmentRepository
	facultyRepo    *repositories.FacultyRepository
	bus            *events.Bus
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(
	teacherRepo *repositories.TeacherRepository,
	departmentRepo *repositories.DepartmentRepository,
	facultyRepo *repositories.FacultyRepository,
	bus *events.Bus,
) TeacherService {
	return &teacherServiceImpl{
		teacherRepo:    teacherRepo,
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
		bus:            bus,
	}
}

func validateTeacher(req *dto.CreateTeacherRequest) error {
	if req == nil {
		return apperrors.NewValidationError("teacher data is required")
	}
	missing := validation.MissingFields(validation.EntityTeacher, map[string]string{
		"fullName":     req.FullName,
		"email":        req.Email,
		"phone":        req.Phone,
		"degree":       req.Degree,
		"departmentId": req.DepartmentID,
	})
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// parentNames maps departmentID to department and faculty display names.
type parentNames struct {
	department map[string]string
	faculty    map[string]string // keyed by departmentID as well
}

func (s *teacherServiceImpl) resolveParents(ctx context.Context) (*parentNames, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	faculties, err := s.facultyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	facultyByID := make(map[string]string, len(faculties))
	for i := range faculties {
		facultyByID[faculties[i].ID] = faculties[i].Name
	}
	names := &parentNames{
		department: make(map[string]string, len(departments)),
		faculty:    make(map[string]string, len(departments)),
	}
	for i := range departments {
		names.department[departments[i].ID] = departments[i].Name
		names.faculty[departments[i].ID] = facultyByID[departments[i].FacultyID]
	}
	return names, nil
}

func toTeacherResponse(t *models.Teacher, names *parentNames) dto.TeacherResponse {
	return dto.TeacherResponse{
		ID:             t.ID,
		DepartmentID:   t.DepartmentID,
		DepartmentName: names.department[t.DepartmentID],
		FacultyName:    names.faculty[t.DepartmentID],
		FullName:       t.FullName,
		Email:          t.Email,
		Phone:          t.Phone,
		Degree:         t.Degree,
		Research:       t.Research,
		Address:        t.Address,
		Age:            t.Age,
		AvatarURL:      t.AvatarURL,
	}
}

// CreateTeacher creates a new teacher
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	if err := validateTeacher(req); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		DepartmentID: req.DepartmentID,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Degree:       req.Degree,
		Research:     req.Research,
		Address:      req.Address,
		Age:          req.Age,
		AvatarURL:    req.AvatarURL,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("error creating teacher: %w", err)
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketTeachers, Action: events.ActionCreated, ID: teacher.ID})
	return teacher, nil
}

// GetTeacherByID retrieves a teacher with parent names resolved
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id string) (*dto.TeacherResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("teacher id is required")
	}
	teacher, err := s.teacherRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	names, err := s.resolveParents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving parent names: %w", err)
	}
	resp := toTeacherResponse(teacher, names)
	return &resp, nil
}

// GetAllTeachers retrieves teachers, optionally scoped to a department,
// in insertion order.
func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context, departmentID string) ([]dto.TeacherResponse, error) {
	var teachers []models.Teacher
	var err error
	if departmentID != "" {
		teachers, err = s.teacherRepo.ListByDepartment(ctx, departmentID)
	} else {
		teachers, err = s.teacherRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}

	names, err := s.resolveParents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving parent names: %w", err)
	}

	responses := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		responses = append(responses, toTeacherResponse(&teachers[i], names))
	}
	return responses, nil
}

// UpdateTeacher updates an existing teacher, keeping its id
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("teacher id is required")
	}
	if err := validateTeacher(req); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		ID:           id,
		DepartmentID: req.DepartmentID,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Degree:       req.Degree,
		Research:     req.Research,
		Address:      req.Address,
		Age:          req.Age,
		AvatarURL:    req.AvatarURL,
	}
	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Event{Collection: kvstore.BucketTeachers, Action: events.ActionUpdated, ID: id})
	return teacher, nil
}

// DeleteTeacher deletes a teacher; there are no child records to cascade
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("teacher id is required")
	}
	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: kvstore.BucketTeachers, Action: events.ActionDeleted, ID: id})
	return nil
}
