package vault

import (
	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/delegation"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
)

// VaultNcnTicket is the Vault's side of a Vault<->Ncn opt-in (spec §3.4,
// keyed (vault, ncn)).
type VaultNcnTicket struct {
	Vault addr.Address
	Ncn   addr.Address
	Index uint64
	State epoch.SlotToggle
}

func (r VaultNcnTicket) Address() addr.Address {
	return addr.Derive(addr.VaultProgram, "vault_ncn_ticket", r.Vault, r.Ncn)
}

// NewVaultNcnTicket creates the ticket, assigning index from the Vault's
// ncn child-count.
func NewVaultNcnTicket(v *Vault, ncn addr.Address, now epoch.Slot) VaultNcnTicket {
	t := VaultNcnTicket{
		Vault: v.Address(),
		Ncn:   ncn,
		Index: v.NcnCount,
		State: epoch.NewSlotToggle(now),
	}
	v.NcnCount++
	return t
}

func (r *VaultNcnTicket) Warmup(now epoch.Slot, l epoch.Length) error {
	return r.State.Activate(now, l)
}

func (r *VaultNcnTicket) Cooldown(now epoch.Slot, l epoch.Length) error {
	return r.State.Deactivate(now, l)
}

// VaultOperatorDelegation is the Vault's record of delegation to a single
// Operator (spec §3.4, keyed (vault, operator)): a SlotToggle plus a
// DelegationState tri-bucket. This is the per-index record the vault
// update engine cranks in order (spec §4.3).
type VaultOperatorDelegation struct {
	Vault    addr.Address
	Operator addr.Address
	Index    uint64
	State    epoch.SlotToggle

	DelegationState delegation.State
}

func (r VaultOperatorDelegation) Address() addr.Address {
	return addr.Derive(addr.VaultProgram, "vault_operator_delegation", r.Vault, r.Operator)
}

// NewVaultOperatorDelegation creates the record, assigning index from the
// Vault's operator child-count.
func NewVaultOperatorDelegation(v *Vault, operator addr.Address, now epoch.Slot) VaultOperatorDelegation {
	r := VaultOperatorDelegation{
		Vault:    v.Address(),
		Operator: operator,
		Index:    v.OperatorCount,
		State:    epoch.NewSlotToggle(now),
	}
	v.OperatorCount++
	return r
}

func (r *VaultOperatorDelegation) Warmup(now epoch.Slot, l epoch.Length) error {
	return r.State.Activate(now, l)
}

func (r *VaultOperatorDelegation) Cooldown(now epoch.Slot, l epoch.Length) error {
	return r.State.Deactivate(now, l)
}

// VaultNcnSlasherTicket mirrors NcnVaultSlasherTicket from the Vault's
// side (spec §3.4, keyed (vault, ncn, slasher)).
type VaultNcnSlasherTicket struct {
	Vault                addr.Address
	Ncn                  addr.Address
	Slasher              addr.Address
	Index                uint64
	State                epoch.SlotToggle
	MaxSlashablePerEpoch uint64
}

func (r VaultNcnSlasherTicket) Address() addr.Address {
	return addr.Derive(addr.VaultProgram, "vault_ncn_slasher_ticket", r.Vault, r.Ncn, r.Slasher)
}

// NewVaultNcnSlasherTicket creates the ticket, assigning index from the
// Vault's slasher child-count.
func NewVaultNcnSlasherTicket(v *Vault, ncn, slasher addr.Address, maxSlashablePerEpoch uint64, now epoch.Slot) VaultNcnSlasherTicket {
	t := VaultNcnSlasherTicket{
		Vault:                v.Address(),
		Ncn:                  ncn,
		Slasher:              slasher,
		Index:                v.SlasherCount,
		State:                epoch.NewSlotToggle(now),
		MaxSlashablePerEpoch: maxSlashablePerEpoch,
	}
	v.SlasherCount++
	return t
}

func (r *VaultNcnSlasherTicket) Warmup(now epoch.Slot, l epoch.Length) error {
	return r.State.Activate(now, l)
}

func (r *VaultNcnSlasherTicket) Cooldown(now epoch.Slot, l epoch.Length) error {
	return r.State.Deactivate(now, l)
}

// VaultNcnSlasherOperatorTicket is the per-epoch slashing cap record
// (spec §3.4, keyed (vault, ncn, slasher, operator, epoch)), created
// lazily the first time a slash against that tuple occurs in that epoch.
type VaultNcnSlasherOperatorTicket struct {
	Vault    addr.Address
	Ncn      addr.Address
	Slasher  addr.Address
	Operator addr.Address
	Epoch    epoch.Epoch

	SlashedThisEpoch uint64
}

func (r VaultNcnSlasherOperatorTicket) Address() addr.Address {
	return addr.DeriveEpoched(addr.VaultProgram, "vault_ncn_slasher_operator", uint64(r.Epoch),
		r.Vault, r.Ncn, r.Slasher, r.Operator)
}

// NewVaultNcnSlasherOperatorTicket creates a fresh, zeroed ticket for the
// given tuple and epoch — callers look one up via the store first and only
// construct a new one on a miss (spec §4.7 "creates the ticket lazily if
// absent").
func NewVaultNcnSlasherOperatorTicket(v, ncn, slasher, operator addr.Address, e epoch.Epoch) VaultNcnSlasherOperatorTicket {
	return VaultNcnSlasherOperatorTicket{Vault: v, Ncn: ncn, Slasher: slasher, Operator: operator, Epoch: e}
}
