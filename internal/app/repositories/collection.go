package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nasibcs/uniadmin/internal/kvstore"
	"github.com/nasibcs/uniadmin/internal/pkg/logger"
)

// loadCollection reads and decodes a whole bucket. An absent bucket is
// an empty collection. A malformed payload is also an empty collection:
// the admin tool must stay usable with corrupted local state, so the
// payload is logged and discarded rather than surfaced as a failure.
func loadCollection[T any](ctx context.Context, store *kvstore.Store, bucket string) ([]T, error) {
	payload, err := store.Load(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", bucket, err)
	}
	if len(payload) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		logger.Warn().Err(err).Str("bucket", bucket).Msg("Discarding malformed collection payload")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveCollection encodes and overwrites a whole bucket. Insertion order
// of the slice is the persisted order.
func saveCollection[T any](ctx context.Context, store *kvstore.Store, bucket string, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", bucket, err)
	}
	if err := store.Save(ctx, bucket, payload); err != nil {
		return fmt.Errorf("error saving %s: %w", bucket, err)
	}
	return nil
}
