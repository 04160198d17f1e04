package vault

import (
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
)

// ErrTicketNotWithdrawable is returned by BurnWithdrawalTicket's gate check
// (spec §4.6, §3.8).
var ErrTicketNotWithdrawable = errors.New("vault: withdrawal ticket not yet withdrawable")

// VaultStakerWithdrawalTicket records a staker's right to redeem a fixed
// VRT amount after a waiting period (spec §3.8). The ATA balance backing
// it is tracked externally via internal/ledger; VrtAmountReserved is the
// recorded field BurnWithdrawalTicket compares the live ATA balance
// against, taking the min of the two to resist tampering (spec §4.6).
type VaultStakerWithdrawalTicket struct {
	Vault             addr.Address
	Staker            addr.Address
	Base              addr.Address
	VrtAmountReserved uint64
	SlotUnstaked      uint64
}

// Address returns the ticket's canonical derived address (spec §6: seeds
// "vault_staker_withdrawal_ticket", vault, staker, base).
func (t VaultStakerWithdrawalTicket) Address() addr.Address {
	return addr.Derive(addr.VaultProgram, "vault_staker_withdrawal_ticket", t.Vault, t.Staker, t.Base)
}

// NewVaultStakerWithdrawalTicket creates a ticket at enqueue time (spec
// §4.5 step 2).
func NewVaultStakerWithdrawalTicket(vault, staker, base addr.Address, vrtAmount uint64, now epoch.Slot) VaultStakerWithdrawalTicket {
	return VaultStakerWithdrawalTicket{
		Vault:             vault,
		Staker:            staker,
		Base:              base,
		VrtAmountReserved: vrtAmount,
		SlotUnstaked:      uint64(now),
	}
}

// Withdrawable reports whether the ticket may be redeemed at slot now:
// the current epoch must exceed epoch(slot_unstaked)+1, and the vault must
// be up-to-date in the current or a later epoch (spec §3.8).
func (t VaultStakerWithdrawalTicket) Withdrawable(v Vault, now epoch.Slot, l epoch.Length) bool {
	currentEpoch := l.At(now)
	unstakedEpoch := l.At(epoch.Slot(t.SlotUnstaked))
	if currentEpoch <= unstakedEpoch+1 {
		return false
	}
	return l.At(epoch.Slot(v.LastFullStateUpdateSlot)) >= currentEpoch
}
