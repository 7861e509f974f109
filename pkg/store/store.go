// Package store provides a typed key-value preference store over pluggable
// raw backends: sqlite for durable state, an in-memory map for tests, and an
// encrypting decorator for sensitive values.
package store

import (
	"context"
	"fmt"
	"strconv"
)

// Backend is a raw string key-value engine. Lookups report presence
// explicitly, a missing key is not an error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Store provides typed accessors over a Backend. All keys are prefixed with
// the namespace to keep them apart from other preferences sharing the same
// backend.
type Store struct {
	backend Backend
	ns      string
}

// New creates a typed store over the given backend, namespace may be empty
func New(backend Backend, namespace string) *Store {
	return &Store{backend: backend, ns: namespace}
}

// GetString retrieves a string value
func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	return s.backend.Get(ctx, s.key(key))
}

// PutString stores a string value
func (s *Store) PutString(ctx context.Context, key, value string) error {
	return s.backend.Put(ctx, s.key(key), value)
}

// GetBool retrieves a boolean value
func (s *Store) GetBool(ctx context.Context, key string) (bool, bool, error) {
	raw, found, err := s.backend.Get(ctx, s.key(key))
	if err != nil || !found {
		return false, found, err
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("parse bool value for %q: %w", key, err)
	}
	return val, true, nil
}

// PutBool stores a boolean value
func (s *Store) PutBool(ctx context.Context, key string, val bool) error {
	return s.backend.Put(ctx, s.key(key), strconv.FormatBool(val))
}

// GetInt retrieves an integer value
func (s *Store) GetInt(ctx context.Context, key string) (int, bool, error) {
	val, found, err := s.GetInt64(ctx, key)
	return int(val), found, err
}

// PutInt stores an integer value
func (s *Store) PutInt(ctx context.Context, key string, val int) error {
	return s.PutInt64(ctx, key, int64(val))
}

// GetInt64 retrieves a 64-bit integer value
func (s *Store) GetInt64(ctx context.Context, key string) (int64, bool, error) {
	raw, found, err := s.backend.Get(ctx, s.key(key))
	if err != nil || !found {
		return 0, found, err
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse int value for %q: %w", key, err)
	}
	return val, true, nil
}

// PutInt64 stores a 64-bit integer value
func (s *Store) PutInt64(ctx context.Context, key string, val int64) error {
	return s.backend.Put(ctx, s.key(key), strconv.FormatInt(val, 10))
}

// Delete removes a value, missing keys are not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, s.key(key))
}

// Close closes the underlying backend
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) key(k string) string {
	if s.ns == "" {
		return k
	}
	return s.ns + "/" + k
}
