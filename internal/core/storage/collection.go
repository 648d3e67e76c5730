// Package storage is the typed collection layer over the raw key-value
// store. Every mutation follows the same protocol: read the full collection,
// compute the new one in memory, write the full collection back. Reads fail
// soft, so corrupt or missing state degrades to "no data" instead of an error.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sulabook/sulabook/internal/core/ports"
)

// ReadAll returns the collection stored under key. A missing key, a backend
// read failure or malformed JSON all yield the empty collection.
func ReadAll[T any](ctx context.Context, kv ports.KVStore, key string) []T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return nil
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil
	}
	return records
}

// WriteAll replaces the collection stored under key.
func WriteAll[T any](ctx context.Context, kv ports.KVStore, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// ReadOne returns the single record stored under key, or nil when the key is
// absent or the stored value cannot be decoded.
func ReadOne[T any](ctx context.Context, kv ports.KVStore, key string) *T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return nil
	}
	var record T
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil
	}
	return &record
}

// WriteOne replaces the single record stored under key.
func WriteOne[T any](ctx context.Context, kv ports.KVStore, key string, record T) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Clear removes the key entirely.
func Clear(ctx context.Context, kv ports.KVStore, key string) error {
	return kv.Delete(ctx, key)
}
