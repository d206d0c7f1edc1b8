// Package local implements the repositories over the single local key-value
// store. Every collection is a JSON array under one key; every write is a
// whole-collection read-modify-write. That costs O(n) per write but keeps the
// store trivially consistent for the single logical writer this tool has.
// Concurrent writers from another process are last-write-wins.
package local

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
)

// KV is the underlying flat store.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Collection is a typed view of one store key holding a JSON array of
// entities. Unparsable persisted data is treated as an empty collection, not
// an error; the next write replaces it.
type Collection[T model.Entity] struct {
	kv     KV
	key    string
	logger *logger.Logger
}

// NewCollection returns a collection bound to the given store key.
func NewCollection[T model.Entity](kv KV, key string, logger *logger.Logger) *Collection[T] {
	return &Collection[T]{
		kv:     kv,
		key:    key,
		logger: logger,
	}
}

// GetAll returns every entity in the collection in insertion order. An absent
// or corrupt key yields an empty collection.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %q: %w", c.key, err)
	}
	if !ok {
		return nil, nil
	}

	var entities []T
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		c.logger.Warn("collection unparsable, treating as empty",
			"key", c.key,
			"error", fmt.Errorf("%w: %w", model.ErrStorageCorrupt, err).Error())
		return nil, nil
	}

	return entities, nil
}

// GetByID returns the entity with the given id or model.ErrNotFound.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	entities, err := c.GetAll(ctx)
	if err != nil {
		return zero, err
	}

	for _, e := range entities {
		if e.EntityID() == id {
			return e, nil
		}
	}

	return zero, model.ErrNotFound
}

// Upsert replaces the entity with the same id in place, preserving its
// position, or appends it.
func (c *Collection[T]) Upsert(ctx context.Context, entity T) error {
	entities, err := c.GetAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, e := range entities {
		if e.EntityID() == entity.EntityID() {
			entities[i] = entity
			replaced = true
			break
		}
	}
	if !replaced {
		entities = append(entities, entity)
	}

	return c.writeAll(ctx, entities)
}

// DeleteByID removes the entity with the given id. Missing ids are a no-op.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	return c.DeleteWhere(ctx, func(e T) bool { return e.EntityID() == id })
}

// DeleteWhere removes every entity matching the predicate.
func (c *Collection[T]) DeleteWhere(ctx context.Context, match func(T) bool) error {
	entities, err := c.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := entities[:0]
	for _, e := range entities {
		if !match(e) {
			kept = append(kept, e)
		}
	}

	return c.writeAll(ctx, kept)
}

func (c *Collection[T]) writeAll(ctx context.Context, entities []T) error {
	if entities == nil {
		entities = []T{}
	}

	raw, err := json.Marshal(entities)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", c.key, err)
	}

	if err := c.kv.Set(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("failed to write collection %q: %w", c.key, err)
	}

	return nil
}
