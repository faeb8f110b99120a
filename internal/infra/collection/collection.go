// Package collection gives a whole-collection JSON blob a per-record
// interface. Every mutation is a read-modify-write of the full blob, held
// under a per-collection mutex so concurrent writers cannot drop each
// other's updates.
package collection

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"careerlaunch/internal/infra"
	"careerlaunch/internal/infra/kvstore"
)

type Position int

const (
	Append Position = iota
	Prepend
)

type Collection[T any] struct {
	store  kvstore.Store
	key    string
	idOf   func(T) string
	logger *slog.Logger

	mu sync.Mutex
}

func New[T any](store kvstore.Store, key string, idOf func(T) string, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{
		store:  store,
		key:    key,
		idOf:   idOf,
		logger: logger.With(slog.String("collection", key)),
	}
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	items, _, err := c.load(ctx)
	return items, err
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	items, _, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	if i := c.indexOf(items, id); i >= 0 {
		return items[i], nil
	}
	return zero, infra.NotFound(c.logger, "record not found: "+id)
}

func (c *Collection[T]) Insert(ctx context.Context, item T, pos Position) error {
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		if pos == Prepend {
			return append([]T{item}, items...), nil
		}
		return append(items, item), nil
	})
}

// Update applies fn to the record with the given id and persists the result.
// When fn fails nothing is written.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var updated T
	err := c.Mutate(ctx, func(items []T) ([]T, error) {
		i := c.indexOf(items, id)
		if i < 0 {
			return nil, infra.NotFound(c.logger, "record not found: "+id)
		}
		item := items[i]
		if err := fn(&item); err != nil {
			return nil, err
		}
		items[i] = item
		updated = item
		return items, nil
	})
	return updated, err
}

// UpdateAll reports how many records fn changed; it writes only when something changed.
func (c *Collection[T]) UpdateAll(ctx context.Context, fn func(*T) bool) (int, error) {
	changed := 0
	err := c.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if fn(&items[i]) {
				changed++
			}
		}
		if changed == 0 {
			return nil, errUnchanged
		}
		return items, nil
	})
	if err == errUnchanged {
		return 0, nil
	}
	return changed, err
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (T, error) {
	var removed T
	err := c.Mutate(ctx, func(items []T) ([]T, error) {
		i := c.indexOf(items, id)
		if i < 0 {
			return nil, infra.NotFound(c.logger, "record not found: "+id)
		}
		removed = items[i]
		return append(items[:i], items[i+1:]...), nil
	})
	return removed, err
}

// Mutate is the single write path. fn receives the current records and
// returns the records to persist.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, _, err := c.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, next)
}

// SeedIfAbsent writes items only when the key has never been written.
func (c *Collection[T]) SeedIfAbsent(ctx context.Context, items []T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return false, infra.WrapRepoErr(c.logger, infra.KindStoreFailure, "failed to read "+c.key, err)
	}
	if found {
		return false, nil
	}
	return true, c.save(ctx, items)
}

// Reset overwrites the collection regardless of its current content.
func (c *Collection[T]) Reset(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, items)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, bool, error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, false, infra.WrapRepoErr(c.logger, infra.KindStoreFailure, "failed to read "+c.key, err)
	}
	if !found {
		return []T{}, false, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("stored collection is unparsable, treating as empty", "error", err.Error())
		return []T{}, true, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindEncodeFailed, "failed to encode "+c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindStoreFailure, "failed to write "+c.key, err)
	}
	return nil
}

func (c *Collection[T]) indexOf(items []T, id string) int {
	for i, item := range items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}
