package vault

import (
	"context"
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/ledger"
)

// Slashing errors (spec §4.7).
var (
	ErrMaxSlashedPerOperatorExceeded = errors.New("vault: slash would exceed max_slashable_per_epoch")
	ErrNotConnected                  = errors.New("vault: relationship is not active-or-cooldown")
)

// ConnectionStatus bundles the Active-or-Cooldown check results for every
// relationship Slash's preconditions require (five flags, pre-verified by
// the caller; the per-epoch slash cap is checked inside Slash against the
// ticket), passed in here so this package stays free
// of a direct dependency on internal/restaking — the Vault program does
// not own NCN/Operator registration).
type ConnectionStatus struct {
	NcnVaultConnected      bool
	OperatorVaultConnected bool
	NcnOperatorConnected   bool
	SlasherAuthorized      bool
	VaultUpToDate          bool
}

// ok reports whether every precondition in the bundle holds.
func (c ConnectionStatus) ok() bool {
	return c.NcnVaultConnected && c.OperatorVaultConnected && c.NcnOperatorConnected &&
		c.SlasherAuthorized && c.VaultUpToDate
}

// SlashResult reports the amount actually transferred to the slasher.
type SlashResult struct {
	Amount uint64
}

// Slash debits amount from a specific VaultOperatorDelegation, mirrors the
// effect into the Vault's aggregate DelegationState, and transfers the
// amount to the slasher (spec §4.7). The per-(vault,ncn,slasher,operator,
// epoch) cap is enforced against ticket, which the caller looks up (or
// lazily constructs via NewVaultNcnSlasherOperatorTicket) before calling.
func Slash(ctx context.Context, tl ledger.TokenLedger, v *Vault, opDelegation *VaultOperatorDelegation,
	ticket *VaultNcnSlasherOperatorTicket, maxSlashablePerEpoch uint64, amount uint64,
	slasher addr.Address, status ConnectionStatus) (SlashResult, error) {

	if !status.ok() {
		return SlashResult{}, ErrNotConnected
	}
	if ticket.SlashedThisEpoch+amount > maxSlashablePerEpoch {
		return SlashResult{}, ErrMaxSlashedPerOperatorExceeded
	}

	if err := opDelegation.DelegationState.Slash(amount); err != nil {
		return SlashResult{}, err
	}
	if err := v.DelegationState.Slash(amount); err != nil {
		return SlashResult{}, err
	}

	if err := tl.Transfer(ctx, v.SupportedMint, v.Address(), slasher, amount); err != nil {
		return SlashResult{}, err
	}

	v.TokensDeposited -= amount
	ticket.SlashedThisEpoch += amount

	return SlashResult{Amount: amount}, nil
}
