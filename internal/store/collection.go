package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection is a typed, JSON-encoded list stored under a single key.
// Save replaces the whole list in one write.
type Collection[T any] struct {
	kv  KeyValueStore
	key string
}

func NewCollection[T any](kv KeyValueStore, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

// Key returns the store key backing the collection.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns the cached list. A missing key yields an empty list.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	items := make([]T, 0)
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", c.key, ErrDecodingValue, err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Save replaces the cached list. A nil slice is stored as "[]".
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("save %s: %w: %w", c.key, ErrEncodingValue, err)
	}

	if err := c.kv.Set(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}
