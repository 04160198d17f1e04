// Package ledger defines the fungible-token collaborator contract this
// module relies on but does not implement: mint/burn/transfer of both the
// underlying supported asset and the VRT share token (spec §1 — "the
// fungible-token subsystem" is explicitly out of scope; only its contract
// matters here). A production caller substitutes an SPL-token-backed
// implementation; internal/ledger/memledger ships an in-memory one for
// tests and local dry-runs.
package ledger

import (
	"context"
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
)

// ErrInsufficientBalance is returned by Transfer/Burn when the source
// account does not hold enough of the named mint.
var ErrInsufficientBalance = errors.New("ledger: insufficient balance")

// TokenLedger is the external collaborator contract for moving value. The
// core never interprets mint/owner addresses beyond equality comparison —
// they are opaque 32-byte keys produced by internal/addr.
type TokenLedger interface {
	Transfer(ctx context.Context, mint addr.Address, from, to addr.Address, amount uint64) error
	Mint(ctx context.Context, mint addr.Address, to addr.Address, amount uint64) error
	Burn(ctx context.Context, mint addr.Address, from addr.Address, amount uint64) error
	BalanceOf(ctx context.Context, mint addr.Address, owner addr.Address) (uint64, error)
}
