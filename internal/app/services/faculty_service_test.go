package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nasibcs/uniadmin/internal/app/models"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/app/repositories"
	"github.com/nasibcs/uniadmin/internal/events"
	"github.com/nasibcs/uniadmin/internal/kvstore"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
)

func newTestEnv(t *testing.T) (*repositories.Repositories, *events.Bus) {
	t.Helper()
	store, err := kvstore.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return repositories.NewRepositories(store), events.NewBus()
}

func newFacultyService(repos *repositories.Repositories, bus *events.Bus) FacultyService {
	return NewFacultyService(
		repos.FacultyRepository,
		repos.DepartmentRepository,
		repos.TeacherRepository,
		repos.SemesterRepository,
		repos.BookRepository,
		bus,
	)
}

func validFacultyRequest(name string) *dto.CreateFacultyRequest {
	return &dto.CreateFacultyRequest{
		Name:            name,
		Dean:            "Dr. Smith",
		EstablishedYear: "1985",
		Description:     "A faculty",
		Logo:            "logo.png",
	}
}

func TestCreateFacultyValidation(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newFacultyService(repos, bus)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.CreateFacultyRequest
	}{
		{"nil request", nil},
		{"missing name", &dto.CreateFacultyRequest{Dean: "Dr. Smith", EstablishedYear: "1985", Description: "x", Logo: "y"}},
		{"blank name", &dto.CreateFacultyRequest{Name: "   ", Dean: "Dr. Smith", EstablishedYear: "1985", Description: "x", Logo: "y"}},
		{"missing dean", &dto.CreateFacultyRequest{Name: "Engineering", EstablishedYear: "1985", Description: "x", Logo: "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateFaculty(ctx, tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation failure, got %v", err)
			}
		})
	}

	// Failed creates must not touch the store
	faculties, err := repos.FacultyRepository.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(faculties) != 0 {
		t.Fatalf("expected empty store after rejected creates, got %d records", len(faculties))
	}
}

func TestCreateFacultyDuplicateName(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newFacultyService(repos, bus)
	ctx := context.Background()

	if _, err := svc.CreateFaculty(ctx, validFacultyRequest("Engineering")); err != nil {
		t.Fatalf("first CreateFaculty failed: %v", err)
	}

	// Same name differing only in case and surrounding whitespace
	_, err := svc.CreateFaculty(ctx, validFacultyRequest("  engineering  "))
	if !errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
		t.Fatalf("expected ErrFacultyAlreadyExists, got %v", err)
	}

	faculties, err := repos.FacultyRepository.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(faculties) != 1 {
		t.Fatalf("duplicate create mutated the store: %d records", len(faculties))
	}
}

func TestUpdateFacultyKeepsOwnName(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newFacultyService(repos, bus)
	ctx := context.Background()

	created, err := svc.CreateFaculty(ctx, validFacultyRequest("Engineering"))
	if err != nil {
		t.Fatalf("CreateFaculty failed: %v", err)
	}

	// Renaming to its own name is not a conflict
	req := validFacultyRequest("Engineering")
	req.Dean = "Dr. Jones"
	updated, err := svc.UpdateFaculty(ctx, created.ID, req)
	if err != nil {
		t.Fatalf("UpdateFaculty failed: %v", err)
	}
	if updated.Dean != "Dr. Jones" || updated.ID != created.ID {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestUpdateFacultyNotFound(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newFacultyService(repos, bus)

	_, err := svc.UpdateFaculty(context.Background(), "missing", validFacultyRequest("Engineering"))
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Fatalf("expected ErrFacultyNotFound, got %v", err)
	}
}

func TestDeleteFacultyCascades(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newFacultyService(repos, bus)
	ctx := context.Background()

	faculty, err := svc.CreateFaculty(ctx, validFacultyRequest("Engineering"))
	if err != nil {
		t.Fatalf("CreateFaculty failed: %v", err)
	}
	other, err := svc.CreateFaculty(ctx, validFacultyRequest("Science"))
	if err != nil {
		t.Fatalf("CreateFaculty failed: %v", err)
	}

	dept := &models.Department{FacultyID: faculty.ID, Name: "Computer Science"}
	if err := repos.DepartmentRepository.Create(ctx, dept); err != nil {
		t.Fatalf("department Create failed: %v", err)
	}
	otherDept := &models.Department{FacultyID: other.ID, Name: "Physics"}
	if err := repos.DepartmentRepository.Create(ctx, otherDept); err != nil {
		t.Fatalf("department Create failed: %v", err)
	}

	teacher := &models.Teacher{DepartmentID: dept.ID, FullName: "Alice"}
	if err := repos.TeacherRepository.Create(ctx, teacher); err != nil {
		t.Fatalf("teacher Create failed: %v", err)
	}
	keptTeacher := &models.Teacher{DepartmentID: otherDept.ID, FullName: "Bob"}
	if err := repos.TeacherRepository.Create(ctx, keptTeacher); err != nil {
		t.Fatalf("teacher Create failed: %v", err)
	}

	semester := &models.Semester{FacultyID: faculty.ID, DepartmentID: dept.ID, Name: "Fall 2025"}
	if err := repos.SemesterRepository.Create(ctx, semester); err != nil {
		t.Fatalf("semester Create failed: %v", err)
	}
	book := &models.Book{FacultyID: faculty.ID, DepartmentID: dept.ID, SemesterID: semester.ID, Name: "Algorithms", Author: "Cormen"}
	if err := repos.BookRepository.Create(ctx, book); err != nil {
		t.Fatalf("book Create failed: %v", err)
	}

	if err := svc.DeleteFaculty(ctx, faculty.ID); err != nil {
		t.Fatalf("DeleteFaculty failed: %v", err)
	}

	departments, _ := repos.DepartmentRepository.List(ctx)
	if len(departments) != 1 || departments[0].ID != otherDept.ID {
		t.Fatalf("expected only the other faculty's department to survive, got %+v", departments)
	}
	teachers, _ := repos.TeacherRepository.List(ctx)
	if len(teachers) != 1 || teachers[0].ID != keptTeacher.ID {
		t.Fatalf("expected only the other department's teacher to survive, got %+v", teachers)
	}
	semesters, _ := repos.SemesterRepository.List(ctx)
	if len(semesters) != 0 {
		t.Fatalf("expected no semesters to survive, got %+v", semesters)
	}
	books, _ := repos.BookRepository.List(ctx)
	if len(books) != 0 {
		t.Fatalf("expected no books to survive, got %+v", books)
	}
}

func TestDeleteFacultyNotFound(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newFacultyService(repos, bus)

	err := svc.DeleteFaculty(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Fatalf("expected ErrFacultyNotFound, got %v", err)
	}
}

func TestCreateFacultyPublishesAfterPersist(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newFacultyService(repos, bus)
	ctx := context.Background()

	changes, cancel := bus.Subscribe(16)
	defer cancel()

	created, err := svc.CreateFaculty(ctx, validFacultyRequest("Engineering"))
	if err != nil {
		t.Fatalf("CreateFaculty failed: %v", err)
	}

	select {
	case event := <-changes:
		if event.Collection != kvstore.BucketFaculties || event.Action != events.ActionCreated || event.ID != created.ID {
			t.Fatalf("unexpected event: %+v", event)
		}
		// The event arrives after the write is durable, so a re-read
		// must observe the new record.
		if _, err := repos.FacultyRepository.FindByID(ctx, event.ID); err != nil {
			t.Fatalf("record not readable when event observed: %v", err)
		}
	default:
		t.Fatal("expected a created event on the bus")
	}
}

func TestDeleteFacultyPublishesCascadeEvents(t *testing.T) {
	repos, bus := newTestEnv(t)
	svc := newFacultyService(repos, bus)
	ctx := context.Background()

	faculty, err := svc.CreateFaculty(ctx, validFacultyRequest("Engineering"))
	if err != nil {
		t.Fatalf("CreateFaculty failed: %v", err)
	}
	dept := &models.Department{FacultyID: faculty.ID, Name: "Computer Science"}
	if err := repos.DepartmentRepository.Create(ctx, dept); err != nil {
		t.Fatalf("department Create failed: %v", err)
	}

	changes, cancel := bus.Subscribe(16)
	defer cancel()

	if err := svc.DeleteFaculty(ctx, faculty.ID); err != nil {
		t.Fatalf("DeleteFaculty failed: %v", err)
	}

	seen := map[string]int{}
	for {
		select {
		case event := <-changes:
			if event.Action != events.ActionDeleted {
				t.Fatalf("unexpected action: %+v", event)
			}
			seen[event.Collection]++
			continue
		default:
		}
		break
	}

	if seen[kvstore.BucketFaculties] != 1 {
		t.Fatalf("expected 1 faculty deleted event, got %d", seen[kvstore.BucketFaculties])
	}
	if seen[kvstore.BucketDepartments] != 1 {
		t.Fatalf("expected 1 department deleted event, got %d", seen[kvstore.BucketDepartments])
	}
}
