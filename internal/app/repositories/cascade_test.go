package repositories

import (
	"context"
	"testing"

	"github.com/nasibcs/uniadmin/internal/app/models"
)

func TestDepartmentListByFaculty(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	d1 := &models.Department{FacultyID: "f1", Name: "Computer Science"}
	d2 := &models.Department{FacultyID: "f2", Name: "Physics"}
	d3 := &models.Department{FacultyID: "f1", Name: "Electrical Engineering"}
	for _, d := range []*models.Department{d1, d2, d3} {
		if err := repos.DepartmentRepository.Create(ctx, d); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := repos.DepartmentRepository.ListByFaculty(ctx, "f1")
	if err != nil {
		t.Fatalf("ListByFaculty failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != d1.ID || got[1].ID != d3.ID {
		t.Fatalf("expected [%s %s] in insertion order, got %+v", d1.ID, d3.ID, got)
	}

	empty, err := repos.DepartmentRepository.ListByFaculty(ctx, "f9")
	if err != nil {
		t.Fatalf("ListByFaculty failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no departments for unknown faculty, got %+v", empty)
	}
}

func TestDepartmentDeleteByFaculty(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	d1 := &models.Department{FacultyID: "f1", Name: "Computer Science"}
	d2 := &models.Department{FacultyID: "f1", Name: "Electrical Engineering"}
	d3 := &models.Department{FacultyID: "f2", Name: "Physics"}
	for _, d := range []*models.Department{d1, d2, d3} {
		if err := repos.DepartmentRepository.Create(ctx, d); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	removed, err := repos.DepartmentRepository.DeleteByFaculty(ctx, "f1")
	if err != nil {
		t.Fatalf("DeleteByFaculty failed: %v", err)
	}
	if len(removed) != 2 {
		t.Fatalf("expected 2 removed departments, got %d", len(removed))
	}

	remaining, err := repos.DepartmentRepository.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != d3.ID {
		t.Fatalf("expected only %s to remain, got %+v", d3.ID, remaining)
	}
}

func TestTeacherDeleteByDepartments(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	t1 := &models.Teacher{DepartmentID: "d1", FullName: "Alice"}
	t2 := &models.Teacher{DepartmentID: "d2", FullName: "Bob"}
	t3 := &models.Teacher{DepartmentID: "d3", FullName: "Carol"}
	for _, teacher := range []*models.Teacher{t1, t2, t3} {
		if err := repos.TeacherRepository.Create(ctx, teacher); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	removed, err := repos.TeacherRepository.DeleteByDepartments(ctx, []string{"d1", "d2"})
	if err != nil {
		t.Fatalf("DeleteByDepartments failed: %v", err)
	}
	if len(removed) != 2 {
		t.Fatalf("expected 2 removed teachers, got %d", len(removed))
	}

	remaining, err := repos.TeacherRepository.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].FullName != "Carol" {
		t.Fatalf("expected only Carol to remain, got %+v", remaining)
	}
}

func TestTeacherDeleteByDepartmentsEmptySet(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	if err := repos.TeacherRepository.Create(ctx, &models.Teacher{DepartmentID: "d1", FullName: "Alice"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	removed, err := repos.TeacherRepository.DeleteByDepartments(ctx, nil)
	if err != nil {
		t.Fatalf("DeleteByDepartments failed: %v", err)
	}
	if len(removed) != 0 {
		t.Fatalf("expected no removals for empty department set, got %d", len(removed))
	}
}

func TestSemesterListByParents(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	s1 := &models.Semester{FacultyID: "f1", DepartmentID: "d1", Name: "Fall 2025"}
	s2 := &models.Semester{FacultyID: "f1", DepartmentID: "d2", Name: "Spring 2026"}
	s3 := &models.Semester{FacultyID: "f2", DepartmentID: "d3", Name: "Fall 2026"}
	for _, s := range []*models.Semester{s1, s2, s3} {
		if err := repos.SemesterRepository.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	tests := []struct {
		name         string
		facultyID    string
		departmentID string
		want         int
	}{
		{"no filter", "", "", 3},
		{"faculty only", "f1", "", 2},
		{"faculty and department", "f1", "d2", 1},
		{"department only", "", "d3", 1},
		{"no match", "f1", "d3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repos.SemesterRepository.ListByParents(ctx, tt.facultyID, tt.departmentID)
			if err != nil {
				t.Fatalf("ListByParents failed: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("expected %d semesters, got %d", tt.want, len(got))
			}
		})
	}
}

func TestBookDeleteBySemester(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	b1 := &models.Book{SemesterID: "s1", Name: "Algorithms", Author: "Cormen"}
	b2 := &models.Book{SemesterID: "s1", Name: "Networks", Author: "Tanenbaum"}
	b3 := &models.Book{SemesterID: "s2", Name: "Databases", Author: "Silberschatz"}
	for _, b := range []*models.Book{b1, b2, b3} {
		if err := repos.BookRepository.Create(ctx, b); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	removed, err := repos.BookRepository.DeleteBySemester(ctx, "s1")
	if err != nil {
		t.Fatalf("DeleteBySemester failed: %v", err)
	}
	if len(removed) != 2 {
		t.Fatalf("expected 2 removed books, got %d", len(removed))
	}

	remaining, err := repos.BookRepository.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Name != "Databases" {
		t.Fatalf("expected only Databases to remain, got %+v", remaining)
	}
}

func TestBookListByParents(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	b1 := &models.Book{FacultyID: "f1", DepartmentID: "d1", SemesterID: "s1", Name: "Algorithms", Author: "Cormen"}
	b2 := &models.Book{FacultyID: "f1", DepartmentID: "d1", SemesterID: "s2", Name: "Networks", Author: "Tanenbaum"}
	b3 := &models.Book{FacultyID: "f2", DepartmentID: "d2", SemesterID: "s3", Name: "Databases", Author: "Silberschatz"}
	for _, b := range []*models.Book{b1, b2, b3} {
		if err := repos.BookRepository.Create(ctx, b); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	books, err := repos.BookRepository.ListByParents(ctx, "f1", "d1", "")
	if err != nil {
		t.Fatalf("ListByParents failed: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}

	books, err = repos.BookRepository.ListByParents(ctx, "", "", "s3")
	if err != nil {
		t.Fatalf("ListByParents failed: %v", err)
	}
	if len(books) != 1 || books[0].Name != "Databases" {
		t.Fatalf("expected only Databases, got %+v", books)
	}
}

func TestSettingsThemeDefaultsToLight(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	theme, err := repos.SettingsRepository.GetTheme(ctx)
	if err != nil {
		t.Fatalf("GetTheme failed: %v", err)
	}
	if theme != models.ThemeLight {
		t.Fatalf("expected default theme %q, got %q", models.ThemeLight, theme)
	}

	if err := repos.SettingsRepository.SaveTheme(ctx, models.ThemeDark); err != nil {
		t.Fatalf("SaveTheme failed: %v", err)
	}
	theme, err = repos.SettingsRepository.GetTheme(ctx)
	if err != nil {
		t.Fatalf("GetTheme failed: %v", err)
	}
	if theme != models.ThemeDark {
		t.Fatalf("expected %q, got %q", models.ThemeDark, theme)
	}
}

func TestSettingsProfileRoundTrip(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	profile, err := repos.SettingsRepository.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil profile on fresh store, got %+v", profile)
	}

	saved := &models.AdminProfile{Username: "nasib", Email: "nasib@example.com"}
	if err := repos.SettingsRepository.SaveProfile(ctx, saved); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	profile, err = repos.SettingsRepository.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile == nil || profile.Username != "nasib" || profile.Email != "nasib@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}
