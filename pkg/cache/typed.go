package cache

import (
	"encoding/json"
	"fmt"
	"time"
)

// GetTyped deserializes the cached JSON value under key into T. It
// reports a miss when the entry is absent, expired, or not valid JSON
// for T.
func GetTyped[T any](s *Store, key string, ttl time.Duration) (T, time.Time, bool) {
	var zero T
	data, written, ok := s.Get(key, ttl)
	if !ok {
		return zero, time.Time{}, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, time.Time{}, false
	}
	return v, written, true
}

// PutTyped serializes value as JSON and stores it under key.
func PutTyped[T any](s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal value for %q: %w", key, err)
	}
	return s.Put(key, data)
}
