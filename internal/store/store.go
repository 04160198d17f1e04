// Package store defines the account-storage collaborator contract: keyed
// persistence of arbitrary records addressed by their canonical
// internal/addr derivation (spec §1 — "account storage" is a host-runtime
// concern, out of scope; only its contract matters here).
package store

import (
	"context"
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
)

// ErrNotFound is returned by Get/Delete when the key has no record.
var ErrNotFound = errors.New("store: account not found")

// ErrAlreadyExists names the create-at-an-occupied-key condition. Nothing
// in this module returns it: memstore's Put overwrites, and the restaking
// and vault Services report an existing relationship record with their own
// ErrRelationshipExists / ErrVaultRelationshipExists.
var ErrAlreadyExists = errors.New("store: account already exists")

// Accounts is the external collaborator contract for keyed record
// persistence. Put overwrites unconditionally; callers that need
// create-once semantics check Has first.
type Accounts interface {
	Put(ctx context.Context, key addr.Address, v any) error
	Get(ctx context.Context, key addr.Address, out any) error
	Has(ctx context.Context, key addr.Address) bool
	Delete(ctx context.Context, key addr.Address) error
}
