// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package store persists named records as a pretty-printed JSON array.
//
// Every operation performs a full read, modifies an in-memory copy, and writes
// the whole file back. There is no file locking: two concurrent invocations
// can race on read-modify-write and the last writer wins.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"wicat/internal/logger"
	"wicat/internal/records"

	"github.com/sahilm/fuzzy"
)

var (
	// ErrNotFound is returned when no record has the requested name.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a rename would overwrite another record.
	ErrConflict = errors.New("name already in use")

	// ErrCorrupt is returned when the file exists but cannot be parsed.
	ErrCorrupt = errors.New("config file is corrupt")
)

// Store is a JSON-array backed collection of records keyed by name.
type Store[T records.Record] struct {
	path string
}

// New returns a store backed by the file at path. The file is created on the
// first write.
func New[T records.Record](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Path returns the backing file.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads every record in stored order. A missing or empty file yields no
// records. A file that cannot be parsed yields no records and an error
// wrapping ErrCorrupt; the file itself is left untouched.
func (s *Store[T]) Load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return []T{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Error("Failed to parse record file", "path", s.path, "error", err)
		return []T{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save overwrites the file with items, creating the parent directory if needed.
func (s *Store[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil { // rwxr-x---
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0640); err != nil { // rw-r-----
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	logger.Debug("Saved record file", "path", s.path, "count", len(items))
	return nil
}

// Upsert replaces any record with the same name and appends item at the end.
func (s *Store[T]) Upsert(item T) error {
	items, err := s.Load()
	if err != nil {
		return err
	}
	items = withoutName(items, item.Key())
	items = append(items, item)
	return s.Save(items)
}

// Get returns the record named name.
func (s *Store[T]) Get(name string) (T, bool, error) {
	var zero T
	items, err := s.Load()
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if item.Key() == name {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Remove deletes the record named name and reports whether anything was
// removed. The file is only rewritten when something changed.
func (s *Store[T]) Remove(name string) (bool, error) {
	items, err := s.Load()
	if err != nil {
		return false, err
	}
	kept := withoutName(items, name)
	if len(kept) == len(items) {
		return false, nil
	}
	return true, s.Save(kept)
}

// Replace stores item in place of the record named oldName. When the name
// changes and another record already owns the new name, nothing is written
// and an error wrapping ErrConflict is returned.
func (s *Store[T]) Replace(oldName string, item T) error {
	items, err := s.Load()
	if err != nil {
		return err
	}
	newName := item.Key()
	if newName != oldName {
		if slices.ContainsFunc(items, func(existing T) bool { return existing.Key() == newName }) {
			return fmt.Errorf("%w: %q", ErrConflict, newName)
		}
		items = withoutName(items, oldName)
	}
	items = withoutName(items, newName)
	items = append(items, item)
	return s.Save(items)
}

// Names lists record names in stored order.
func (s *Store[T]) Names() ([]string, error) {
	items, err := s.Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Key())
	}
	return names, nil
}

// Suggest returns up to limit stored names that fuzzily match query, best
// match first. Read errors yield no suggestions.
func (s *Store[T]) Suggest(query string, limit int) []string {
	names, err := s.Names()
	if err != nil || query == "" {
		return nil
	}
	matches := fuzzy.Find(query, names)
	var out []string
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

func withoutName[T records.Record](items []T, name string) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.Key() != name {
			kept = append(kept, item)
		}
	}
	return kept
}
