// Package memledger is an in-memory ledger.TokenLedger, standing in for the
// real token program during tests and local dry-runs (spec §13). It holds
// per-(mint, owner) balances behind a mutex, the same lock-a-map-by-key
// style the teacher uses for its in-memory validator registry
// (validator_set.go's sync.RWMutex-guarded ValidatorRegistry).
package memledger

import (
	"context"
	"sync"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/ledger"
)

type key struct {
	mint  addr.Address
	owner addr.Address
}

// Ledger is a concurrency-safe in-memory TokenLedger.
type Ledger struct {
	mu       sync.RWMutex
	balances map[key]uint64
}

// New creates an empty in-memory ledger.
func New() *Ledger {
	return &Ledger{balances: make(map[key]uint64)}
}

// Seed directly sets a balance, bypassing Mint — useful for test fixtures
// that need a non-zero starting state without implying a mint event.
func (l *Ledger) Seed(mint, owner addr.Address, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[key{mint, owner}] = amount
}

func (l *Ledger) BalanceOf(_ context.Context, mint addr.Address, owner addr.Address) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[key{mint, owner}], nil
}

func (l *Ledger) Mint(_ context.Context, mint addr.Address, to addr.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[key{mint, to}] += amount
	return nil
}

func (l *Ledger) Burn(_ context.Context, mint addr.Address, from addr.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := key{mint, from}
	if l.balances[k] < amount {
		return ledger.ErrInsufficientBalance
	}
	l.balances[k] -= amount
	return nil
}

func (l *Ledger) Transfer(_ context.Context, mint addr.Address, from, to addr.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	fromKey := key{mint, from}
	if l.balances[fromKey] < amount {
		return ledger.ErrInsufficientBalance
	}
	l.balances[fromKey] -= amount
	l.balances[key{mint, to}] += amount
	return nil
}

var _ ledger.TokenLedger = (*Ledger)(nil)
