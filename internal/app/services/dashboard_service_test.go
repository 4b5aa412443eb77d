package services

import (
	"context"
	"testing"

	"github.com/nasibcs/uniadmin/internal/app/models"
)

func TestDashboardSummaryCounts(t *testing.T) {
	repos, _ := newTestEnv(t)
	svc := NewDashboardService(repos)
	ctx := context.Background()

	summary, err := svc.GetSummary(ctx)
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if summary.Faculties != 0 || summary.Departments != 0 || summary.Teachers != 0 ||
		summary.Semesters != 0 || summary.Books != 0 {
		t.Fatalf("expected all-zero summary on fresh store, got %+v", summary)
	}

	if err := repos.FacultyRepository.Create(ctx, &models.Faculty{Name: "Engineering"}); err != nil {
		t.Fatalf("faculty Create failed: %v", err)
	}
	for _, name := range []string{"Computer Science", "Physics"} {
		if err := repos.DepartmentRepository.Create(ctx, &models.Department{Name: name}); err != nil {
			t.Fatalf("department Create failed: %v", err)
		}
	}
	if err := repos.BookRepository.Create(ctx, &models.Book{Name: "Algorithms", Author: "Cormen"}); err != nil {
		t.Fatalf("book Create failed: %v", err)
	}

	summary, err = svc.GetSummary(ctx)
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if summary.Faculties != 1 || summary.Departments != 2 || summary.Books != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Teachers != 0 || summary.Semesters != 0 {
		t.Fatalf("unexpected non-zero counts: %+v", summary)
	}
}
