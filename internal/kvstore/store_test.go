package kvstore

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadMissingBucket(t *testing.T) {
	store := newTestStore(t)

	payload, err := store.Load(context.Background(), BucketFaculties)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected nil payload for missing bucket, got %q", payload)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sizes := []int{0, 1, 500}
	for _, n := range sizes {
		t.Run(fmt.Sprintf("records=%d", n), func(t *testing.T) {
			payload := []byte("[")
			for i := 0; i < n; i++ {
				if i > 0 {
					payload = append(payload, ',')
				}
				payload = append(payload, []byte(fmt.Sprintf(`{"id":"id-%d"}`, i))...)
			}
			payload = append(payload, ']')

			if err := store.Save(ctx, BucketBooks, payload); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := store.Load(ctx, BucketBooks)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if string(got) != string(payload) {
				t.Fatalf("payload mismatch: got %d bytes, want %d bytes", len(got), len(payload))
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, BucketTheme, []byte(`"light"`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, BucketTheme, []byte(`"dark"`)); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := store.Load(ctx, BucketTheme)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != `"dark"` {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestBucketsAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, BucketFaculties, []byte(`[{"id":"f1"}]`)); err != nil {
		t.Fatalf("Save faculties failed: %v", err)
	}
	if err := store.Save(ctx, BucketDepartments, []byte(`[{"id":"d1"}]`)); err != nil {
		t.Fatalf("Save departments failed: %v", err)
	}

	faculties, err := store.Load(ctx, BucketFaculties)
	if err != nil {
		t.Fatalf("Load faculties failed: %v", err)
	}
	if string(faculties) != `[{"id":"f1"}]` {
		t.Fatalf("faculties payload changed: %q", faculties)
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, BucketProfile, []byte(`{"username":"nasib"}`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, BucketProfile); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err := store.Load(ctx, BucketProfile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %q", got)
	}

	// Deleting a missing bucket is not an error
	if err := store.Delete(ctx, "nonexistent"); err != nil {
		t.Fatalf("Delete of missing bucket failed: %v", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Save(ctx, BucketTeachers, []byte(`[{"id":"t1"}]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load(ctx, BucketTeachers)
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if string(got) != `[{"id":"t1"}]` {
		t.Fatalf("payload lost across reopen: %q", got)
	}
}
