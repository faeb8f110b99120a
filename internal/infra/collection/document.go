package collection

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"careerlaunch/internal/infra"
	"careerlaunch/internal/infra/kvstore"
)

var errUnchanged = errors.New("collection unchanged")

// Document is the single-object counterpart of Collection, used for
// process-wide singletons such as notification preferences.
type Document[T any] struct {
	store  kvstore.Store
	key    string
	logger *slog.Logger

	mu sync.Mutex
}

func NewDocument[T any](store kvstore.Store, key string, logger *slog.Logger) *Document[T] {
	return &Document[T]{
		store:  store,
		key:    key,
		logger: logger.With(slog.String("document", key)),
	}
}

// Load returns found=false when the key is absent or its value is unparsable.
func (d *Document[T]) Load(ctx context.Context) (T, bool, error) {
	var doc T
	raw, found, err := d.store.Get(ctx, d.key)
	if err != nil {
		return doc, false, infra.WrapRepoErr(d.logger, infra.KindStoreFailure, "failed to read "+d.key, err)
	}
	if !found {
		return doc, false, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		d.logger.Warn("stored document is unparsable, falling back to defaults", "error", err.Error())
		var zero T
		return zero, false, nil
	}
	return doc, true, nil
}

func (d *Document[T]) Save(ctx context.Context, doc T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	raw, err := json.Marshal(doc)
	if err != nil {
		return infra.WrapRepoErr(d.logger, infra.KindEncodeFailed, "failed to encode "+d.key, err)
	}
	if err := d.store.Set(ctx, d.key, raw); err != nil {
		return infra.WrapRepoErr(d.logger, infra.KindStoreFailure, "failed to write "+d.key, err)
	}
	return nil
}
