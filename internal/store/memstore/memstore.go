// Package memstore is an in-memory store.Accounts, standing in for the
// host's account storage during tests and local dry-runs. Records are
// stored by value and copied out via reflection on Get, so callers can
// safely mutate their own copy without corrupting the store — the same
// defensive-copy discipline the teacher applies when handing out
// ValidatorEntry snapshots from validator_set.go's registry.
package memstore

import (
	"context"
	"reflect"
	"sync"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/store"
)

// Store is a concurrency-safe in-memory Accounts implementation.
type Store struct {
	mu      sync.RWMutex
	records map[addr.Address]any
}

// New creates an empty in-memory account store.
func New() *Store {
	return &Store{records: make(map[addr.Address]any)}
}

func (s *Store) Put(_ context.Context, key addr.Address, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = v
	return nil
}

// Get copies the stored record into out, which must be a non-nil pointer
// of the same type the record was Put with.
func (s *Store) Get(_ context.Context, key addr.Address, out any) error {
	s.mu.RLock()
	v, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return store.ErrNotFound
	}
	dst := reflect.ValueOf(out)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return store.ErrNotFound
	}
	dst.Elem().Set(reflect.ValueOf(v))
	return nil
}

func (s *Store) Has(_ context.Context, key addr.Address) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[key]
	return ok
}

func (s *Store) Delete(_ context.Context, key addr.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return store.ErrNotFound
	}
	delete(s.records, key)
	return nil
}

var _ store.Accounts = (*Store)(nil)
