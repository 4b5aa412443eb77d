package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/nasibcs/uniadmin/internal/app/models"
	"github.com/nasibcs/uniadmin/internal/kvstore"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
)

func newTestRepos(t *testing.T) (*Repositories, *kvstore.Store) {
	t.Helper()
	store, err := kvstore.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewRepositories(store), store
}

func TestFacultyCreateAssignsID(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	faculty := &models.Faculty{Name: "Engineering", Dean: "Dr. Smith", EstablishedYear: "1985"}
	if err := repos.FacultyRepository.Create(ctx, faculty); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if faculty.ID == "" {
		t.Fatal("expected Create to assign an id")
	}

	found, err := repos.FacultyRepository.FindByID(ctx, faculty.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Name != "Engineering" || found.Dean != "Dr. Smith" {
		t.Fatalf("unexpected faculty: %+v", found)
	}
}

func TestFacultyListInsertionOrder(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	names := []string{"Engineering", "Science", "Arts"}
	for _, name := range names {
		if err := repos.FacultyRepository.Create(ctx, &models.Faculty{Name: name}); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}

	faculties, err := repos.FacultyRepository.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(faculties) != len(names) {
		t.Fatalf("expected %d faculties, got %d", len(names), len(faculties))
	}
	for i, name := range names {
		if faculties[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, faculties[i].Name)
		}
	}
}

func TestFacultyUpdateReplacesFields(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	faculty := &models.Faculty{Name: "Engineering", Dean: "Dr. Smith"}
	if err := repos.FacultyRepository.Create(ctx, faculty); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated := &models.Faculty{ID: faculty.ID, Name: "Engineering", Dean: "Dr. Jones", EstablishedYear: "1985"}
	if err := repos.FacultyRepository.Update(ctx, updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repos.FacultyRepository.FindByID(ctx, faculty.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.ID != faculty.ID || found.Dean != "Dr. Jones" || found.EstablishedYear != "1985" {
		t.Fatalf("unexpected faculty after update: %+v", found)
	}
}

func TestFacultyUpdateMissing(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	err := repos.FacultyRepository.Update(ctx, &models.Faculty{ID: "missing", Name: "Ghost"})
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Fatalf("expected ErrFacultyNotFound, got %v", err)
	}
}

func TestFacultyDeleteMissing(t *testing.T) {
	repos, _ := newTestRepos(t)

	err := repos.FacultyRepository.Delete(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Fatalf("expected ErrFacultyNotFound, got %v", err)
	}
}

func TestFacultyDeleteKeepsOthers(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	first := &models.Faculty{Name: "Engineering"}
	second := &models.Faculty{Name: "Science"}
	for _, f := range []*models.Faculty{first, second} {
		if err := repos.FacultyRepository.Create(ctx, f); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	if err := repos.FacultyRepository.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	faculties, err := repos.FacultyRepository.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(faculties) != 1 || faculties[0].ID != second.ID {
		t.Fatalf("expected only %s to remain, got %+v", second.ID, faculties)
	}
}

func TestFacultyExistsByName(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	faculty := &models.Faculty{Name: "Engineering"}
	if err := repos.FacultyRepository.Create(ctx, faculty); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tests := []struct {
		name      string
		query     string
		excludeID string
		want      bool
	}{
		{"exact match", "Engineering", "", true},
		{"case insensitive", "engineering", "", true},
		{"trimmed", "  Engineering  ", "", true},
		{"different name", "Science", "", false},
		{"excluded self", "Engineering", faculty.ID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repos.FacultyRepository.ExistsByName(ctx, tt.query, tt.excludeID)
			if err != nil {
				t.Fatalf("ExistsByName failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ExistsByName(%q, %q) = %v, want %v", tt.query, tt.excludeID, got, tt.want)
			}
		})
	}
}

func TestMalformedPayloadTreatedAsEmpty(t *testing.T) {
	repos, store := newTestRepos(t)
	ctx := context.Background()

	if err := store.Save(ctx, kvstore.BucketFaculties, []byte("{not json")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	faculties, err := repos.FacultyRepository.List(ctx)
	if err != nil {
		t.Fatalf("List over malformed payload failed: %v", err)
	}
	if len(faculties) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(faculties))
	}

	// A create over the malformed bucket starts the collection fresh
	faculty := &models.Faculty{Name: "Engineering"}
	if err := repos.FacultyRepository.Create(ctx, faculty); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	faculties, err = repos.FacultyRepository.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(faculties) != 1 {
		t.Fatalf("expected 1 record after recovery, got %d", len(faculties))
	}
}
