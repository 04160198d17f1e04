package cliconfig

import (
	"github.com/jito-foundation/restaking-sub002/internal/ledger"
	"github.com/jito-foundation/restaking-sub002/internal/ledger/memledger"
	"github.com/jito-foundation/restaking-sub002/internal/store"
	"github.com/jito-foundation/restaking-sub002/internal/store/memstore"
)

// LocalRuntime backs the demo/dry-run subcommands with an in-process
// store.Accounts and ledger.TokenLedger pair. A production deployment
// points these two interfaces at the host runtime's RPC surface instead
// (spec §13 "external collaborator contracts") -- this core ships no RPC
// client, so --rpc-url is accepted and recorded but a LocalRuntime is
// what every subcommand actually drives against today.
type LocalRuntime struct {
	Accounts store.Accounts
	Ledger   ledger.TokenLedger

	// MemLedger is the concrete backing store behind Ledger, exposed so
	// demo subcommands can Seed() a starting balance without a mint event.
	MemLedger *memledger.Ledger
}

// NewLocalRuntime builds a fresh in-memory runtime.
func NewLocalRuntime() *LocalRuntime {
	ml := memledger.New()
	return &LocalRuntime{
		Accounts:  memstore.New(),
		Ledger:    ml,
		MemLedger: ml,
	}
}
