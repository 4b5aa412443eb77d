package services

import (
	"context"
	"fmt"

	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/repositories"
)

// DashboardService defines the interface for dashboard aggregates
type DashboardService interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummary, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	repos *repositories.Repositories
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(repos *repositories.Repositories) DashboardService {
	return &dashboardServiceImpl{repos: repos}
}

// GetSummary counts the records in every collection. Dashboard views
// re-invoke this whenever a change event arrives.
func (s *dashboardServiceImpl) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	faculties, err := s.repos.FacultyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting faculties: %w", err)
	}
	departments, err := s.repos.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting departments: %w", err)
	}
	teachers, err := s.repos.TeacherRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting teachers: %w", err)
	}
	semesters, err := s.repos.SemesterRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting semesters: %w", err)
	}
	books, err := s.repos.BookRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting books: %w", err)
	}

	return &dto.DashboardSummary{
		Faculties:   len(faculties),
		Departments: len(departments),
		Teachers:    len(teachers),
		Semesters:   len(semesters),
		Books:       len(books),
	}, nil
}
