package restaking

import (
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
)

// Generic relationship-record errors (spec §4.2).
var (
	ErrRelationshipExists      = errors.New("restaking: relationship record already exists")
	ErrRelationshipNotInactive = epoch.ErrNotInactive
	ErrRelationshipNotActive   = epoch.ErrNotActive
)

// NcnOperatorState tracks the bilateral opt-in between one Ncn and one
// Operator (spec §3.4): two independent SlotToggles, one per direction,
// since either side may warm up/cool down its half of the relationship
// without the other's cooperation.
type NcnOperatorState struct {
	Ncn      addr.Address
	Operator addr.Address
	Index    uint64

	NcnOptInState      epoch.SlotToggle
	OperatorOptInState epoch.SlotToggle
}

// Address returns the record's canonical derived address (spec §6: seeds
// "ncn_operator_state", ncn, operator).
func (r NcnOperatorState) Address() addr.Address {
	return addr.Derive(addr.RestakingProgram, "ncn_operator_state", r.Ncn, r.Operator)
}

// NewNcnOperatorState creates the record at slot now, with both sides
// starting WarmUp (spec §4.2 Initialize sets a new-at-current-slot
// SlotToggle). Index is assigned from the Ncn's operator child-count.
func NewNcnOperatorState(ncn *Ncn, operator addr.Address, now epoch.Slot) NcnOperatorState {
	r := NcnOperatorState{
		Ncn:                ncn.Address(),
		Operator:           operator,
		Index:              ncn.OperatorCount,
		NcnOptInState:      epoch.NewSlotToggle(now),
		OperatorOptInState: epoch.NewSlotToggle(now),
	}
	ncn.OperatorCount++
	return r
}

// Connected reports whether both directions are Active (or, when grace is
// true, Active-or-Cooldown) at slot s — the bilateral gate spec §4.2
// requires before a dependent record (e.g. a delegation) may be
// considered connected.
func (r NcnOperatorState) Connected(s epoch.Slot, l epoch.Length, grace bool) bool {
	if grace {
		return r.NcnOptInState.IsActiveOrCooldown(s, l) && r.OperatorOptInState.IsActiveOrCooldown(s, l)
	}
	return r.NcnOptInState.IsActive(s, l) && r.OperatorOptInState.IsActive(s, l)
}

// WarmupNcn activates the Ncn's side of the relationship (spec §4.2:
// activate(slot), fails unless Inactive).
func (r *NcnOperatorState) WarmupNcn(now epoch.Slot, l epoch.Length) error {
	return r.NcnOptInState.Activate(now, l)
}

// CooldownNcn deactivates the Ncn's side of the relationship (spec §4.2:
// deactivate(slot), fails unless Active).
func (r *NcnOperatorState) CooldownNcn(now epoch.Slot, l epoch.Length) error {
	return r.NcnOptInState.Deactivate(now, l)
}

// WarmupOperator activates the Operator's side of the relationship (spec
// §4.2: activate(slot), fails unless Inactive).
func (r *NcnOperatorState) WarmupOperator(now epoch.Slot, l epoch.Length) error {
	return r.OperatorOptInState.Activate(now, l)
}

// CooldownOperator deactivates the Operator's side of the relationship
// (spec §4.2: deactivate(slot), fails unless Active).
func (r *NcnOperatorState) CooldownOperator(now epoch.Slot, l epoch.Length) error {
	return r.OperatorOptInState.Deactivate(now, l)
}

// NcnVaultTicket records the Ncn's side of an Ncn<->Vault opt-in (spec §3.4,
// keyed (ncn, vault)).
type NcnVaultTicket struct {
	Ncn   addr.Address
	Vault addr.Address
	Index uint64
	State epoch.SlotToggle
}

func (r NcnVaultTicket) Address() addr.Address {
	return addr.Derive(addr.RestakingProgram, "ncn_vault_ticket", r.Ncn, r.Vault)
}

// NewNcnVaultTicket creates the ticket, assigning index from the Ncn's
// vault child-count.
func NewNcnVaultTicket(ncn *Ncn, vault addr.Address, now epoch.Slot) NcnVaultTicket {
	t := NcnVaultTicket{
		Ncn:   ncn.Address(),
		Vault: vault,
		Index: ncn.VaultCount,
		State: epoch.NewSlotToggle(now),
	}
	ncn.VaultCount++
	return t
}

// Warmup activates the ticket (spec §4.2: activate(slot), fails unless
// Inactive).
func (r *NcnVaultTicket) Warmup(now epoch.Slot, l epoch.Length) error {
	return r.State.Activate(now, l)
}

// Cooldown deactivates the ticket (spec §4.2: deactivate(slot), fails
// unless Active).
func (r *NcnVaultTicket) Cooldown(now epoch.Slot, l epoch.Length) error {
	return r.State.Deactivate(now, l)
}

// OperatorVaultTicket records the Operator's side of an Operator<->Vault
// opt-in (spec §3.4, keyed (operator, vault)).
type OperatorVaultTicket struct {
	Operator addr.Address
	Vault    addr.Address
	Index    uint64
	State    epoch.SlotToggle
}

func (r OperatorVaultTicket) Address() addr.Address {
	return addr.Derive(addr.RestakingProgram, "operator_vault_ticket", r.Operator, r.Vault)
}

// NewOperatorVaultTicket creates the ticket, assigning index from the
// Operator's vault child-count.
func NewOperatorVaultTicket(operator *Operator, vault addr.Address, now epoch.Slot) OperatorVaultTicket {
	t := OperatorVaultTicket{
		Operator: operator.Address(),
		Vault:    vault,
		Index:    operator.VaultCount,
		State:    epoch.NewSlotToggle(now),
	}
	operator.VaultCount++
	return t
}

func (r *OperatorVaultTicket) Warmup(now epoch.Slot, l epoch.Length) error {
	return r.State.Activate(now, l)
}

func (r *OperatorVaultTicket) Cooldown(now epoch.Slot, l epoch.Length) error {
	return r.State.Deactivate(now, l)
}

// NcnVaultSlasherTicket records the Ncn's authorization of a slasher
// principal against a specific vault, carrying the per-epoch slashing cap
// (spec §3.4, keyed (ncn, vault, slasher)).
type NcnVaultSlasherTicket struct {
	Ncn                  addr.Address
	Vault                addr.Address
	Slasher              addr.Address
	Index                uint64
	State                epoch.SlotToggle
	MaxSlashablePerEpoch uint64
}

func (r NcnVaultSlasherTicket) Address() addr.Address {
	return addr.Derive(addr.RestakingProgram, "ncn_vault_slasher_ticket", r.Ncn, r.Vault, r.Slasher)
}

// NewNcnVaultSlasherTicket creates the ticket, assigning index from the
// Ncn's slasher child-count.
func NewNcnVaultSlasherTicket(ncn *Ncn, vault, slasher addr.Address, maxSlashablePerEpoch uint64, now epoch.Slot) NcnVaultSlasherTicket {
	t := NcnVaultSlasherTicket{
		Ncn:                  ncn.Address(),
		Vault:                vault,
		Slasher:              slasher,
		Index:                ncn.SlasherCount,
		State:                epoch.NewSlotToggle(now),
		MaxSlashablePerEpoch: maxSlashablePerEpoch,
	}
	ncn.SlasherCount++
	return t
}

func (r *NcnVaultSlasherTicket) Warmup(now epoch.Slot, l epoch.Length) error {
	return r.State.Activate(now, l)
}

func (r *NcnVaultSlasherTicket) Cooldown(now epoch.Slot, l epoch.Length) error {
	return r.State.Deactivate(now, l)
}
