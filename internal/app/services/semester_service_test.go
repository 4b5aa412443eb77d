package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nasibcs/uniadmin/internal/app/models"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/repositories"
	"github.com/nasibcs/uniadmin/internal/events"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
)

func newSemesterService(repos *repositories.Repositories, bus *events.Bus) SemesterService {
	return NewSemesterService(
		repos.SemesterRepository,
		repos.DepartmentRepository,
		repos.FacultyRepository,
		repos.BookRepository,
		bus,
	)
}

func validSemesterRequest(facultyID, departmentID string) *dto.CreateSemesterRequest {
	return &dto.CreateSemesterRequest{
		FacultyID:    facultyID,
		DepartmentID: departmentID,
		Name:         "Fall 2025",
		Year:         "2025",
		Season:       "fall",
	}
}

func TestCreateSemesterNormalizesBooks(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newSemesterService(repos, bus)
	ctx := context.Background()

	created, err := svc.CreateSemester(ctx, validSemesterRequest("f1", "d1"))
	if err != nil {
		t.Fatalf("CreateSemester failed: %v", err)
	}
	if created.Books == nil {
		t.Fatal("expected Books to be an empty slice, not nil")
	}
	if len(created.Books) != 0 {
		t.Fatalf("expected no books, got %v", created.Books)
	}
}

func TestCreateSemesterValidation(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newSemesterService(repos, bus)
	ctx := context.Background()

	req := validSemesterRequest("f1", "d1")
	req.Season = ""
	if _, err := svc.CreateSemester(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestGetAllSemestersFilters(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newSemesterService(repos, bus)
	ctx := context.Background()

	if _, err := svc.CreateSemester(ctx, validSemesterRequest("f1", "d1")); err != nil {
		t.Fatalf("CreateSemester failed: %v", err)
	}
	other := validSemesterRequest("f2", "d2")
	other.Name = "Spring 2026"
	if _, err := svc.CreateSemester(ctx, other); err != nil {
		t.Fatalf("CreateSemester failed: %v", err)
	}

	semesters, err := svc.GetAllSemesters(ctx, "f1", "")
	if err != nil {
		t.Fatalf("GetAllSemesters failed: %v", err)
	}
	if len(semesters) != 1 || semesters[0].Name != "Fall 2025" {
		t.Fatalf("unexpected filter result: %+v", semesters)
	}

	all, err := svc.GetAllSemesters(ctx, "", "")
	if err != nil {
		t.Fatalf("GetAllSemesters failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 semesters, got %d", len(all))
	}
}

func TestDeleteSemesterCascadesToBooks(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newSemesterService(repos, bus)
	ctx := context.Background()

	semester, err := svc.CreateSemester(ctx, validSemesterRequest("f1", "d1"))
	if err != nil {
		t.Fatalf("CreateSemester failed: %v", err)
	}
	book := &models.Book{SemesterID: semester.ID, Name: "Algorithms", Author: "Cormen"}
	if err := repos.BookRepository.Create(ctx, book); err != nil {
		t.Fatalf("book Create failed: %v", err)
	}
	kept := &models.Book{SemesterID: "other", Name: "Networks", Author: "Tanenbaum"}
	if err := repos.BookRepository.Create(ctx, kept); err != nil {
		t.Fatalf("book Create failed: %v", err)
	}

	if err := svc.DeleteSemester(ctx, semester.ID); err != nil {
		t.Fatalf("DeleteSemester failed: %v", err)
	}

	books, _ := repos.BookRepository.List(ctx)
	if len(books) != 1 || books[0].Name != "Networks" {
		t.Fatalf("expected only the unrelated book to survive, got %+v", books)
	}
}

func TestDeleteSemesterNotFound(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newSemesterService(repos, bus)

	err := svc.DeleteSemester(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrSemesterNotFound) {
		t.Fatalf("expected ErrSemesterNotFound, got %v", err)
	}
}
