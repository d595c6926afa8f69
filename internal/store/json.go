package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adcreativex/adcreativex/internal/logging"
)

// LoadJSON reads and deserializes the blob at key.
//
// Absent keys yield (zero, false, nil). A blob that fails to deserialize is
// treated the same way: the corrupt entry is removed and the caller sees an
// absent value, never an error. Availability wins over surfacing storage
// corruption here.
func LoadJSON[T any](ctx context.Context, s Store, key string, log logging.Logger) (T, bool, error) {
	var zero T

	data, err := s.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if data == nil {
		return zero, false, nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn(ctx, "discarding malformed record", "key", key, "error", err)
		if delErr := s.Delete(ctx, key); delErr != nil {
			return zero, false, delErr
		}
		return zero, false, nil
	}
	return v, true, nil
}

// SaveJSON serializes v and writes it through to key synchronously.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize record[%s]: %w", key, err)
	}
	return s.Set(ctx, key, data)
}
