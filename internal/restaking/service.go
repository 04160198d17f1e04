package restaking

import (
	"context"
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
	"github.com/jito-foundation/restaking-sub002/internal/store"
)

// Service ties the pure value types above to an Accounts store, enforcing
// the existence/admin preconditions spec §4.2 requires of every
// relationship-record operation. It plays the role the teacher's
// ValidatorRegistry plays for validator_set.go: the stateful front door
// in front of otherwise-pure value types.
type Service struct {
	Accounts store.Accounts
}

// NewService wraps an Accounts store.
func NewService(accounts store.Accounts) *Service {
	return &Service{Accounts: accounts}
}

// InitializeNcnVaultTicket creates the ticket at its canonical address.
// Fails if signer is not the Ncn's vault admin, or the ticket already
// exists (spec §4.2).
func (svc *Service) InitializeNcnVaultTicket(ctx context.Context, ncn *Ncn, signer, vault addr.Address, now epoch.Slot) (NcnVaultTicket, error) {
	if signer != ncn.VaultAdmin {
		return NcnVaultTicket{}, ErrNcnAdminInvalid
	}
	t := NewNcnVaultTicket(ncn, vault, now)
	key := t.Address()
	if svc.Accounts.Has(ctx, key) {
		return NcnVaultTicket{}, ErrRelationshipExists
	}
	if err := svc.Accounts.Put(ctx, key, t); err != nil {
		return NcnVaultTicket{}, err
	}
	return t, nil
}

// InitializeOperatorVaultTicket mirrors InitializeNcnVaultTicket for the
// Operator side of an Operator<->Vault opt-in.
func (svc *Service) InitializeOperatorVaultTicket(ctx context.Context, operator *Operator, signer, vault addr.Address, now epoch.Slot) (OperatorVaultTicket, error) {
	if signer != operator.VaultAdmin {
		return OperatorVaultTicket{}, errors.New("restaking: signer is not the operator's vault admin")
	}
	t := NewOperatorVaultTicket(operator, vault, now)
	key := t.Address()
	if svc.Accounts.Has(ctx, key) {
		return OperatorVaultTicket{}, ErrRelationshipExists
	}
	if err := svc.Accounts.Put(ctx, key, t); err != nil {
		return OperatorVaultTicket{}, err
	}
	return t, nil
}

// InitializeNcnOperatorState creates the bilateral record, signed by the
// Ncn's operator admin. Both halves start warming up at creation; the
// Operator's half is later cooled down or re-warmed on its own through
// CooldownNcnOperatorStateOperatorSide / WarmupNcnOperatorStateOperatorSide,
// mirroring the host's paired {Ncn,Operator}Warmup{Operator,Ncn}
// instructions (spec §6).
func (svc *Service) InitializeNcnOperatorState(ctx context.Context, ncn *Ncn, signer, operator addr.Address, now epoch.Slot) (NcnOperatorState, error) {
	if signer != ncn.OperatorAdmin {
		return NcnOperatorState{}, ErrNcnAdminInvalid
	}
	r := NewNcnOperatorState(ncn, operator, now)
	key := r.Address()
	if svc.Accounts.Has(ctx, key) {
		return NcnOperatorState{}, ErrRelationshipExists
	}
	if err := svc.Accounts.Put(ctx, key, r); err != nil {
		return NcnOperatorState{}, err
	}
	return r, nil
}

// WarmupNcnOperatorStateOperatorSide activates the Operator's half of an
// existing bilateral record, signed by the Operator's own admin — the
// counterpart to InitializeNcnOperatorState's Ncn-side admin check, mirroring
// the host's paired {Ncn,Operator}Warmup{Operator,Ncn} instructions (spec
// §6). Distinguished from a plain Operator-admin check via
// ErrNcnOperatorAdminInvalid since it authorizes a joint record, not the
// Operator account itself.
func (svc *Service) WarmupNcnOperatorStateOperatorSide(ctx context.Context, operator *Operator, signer addr.Address, r *NcnOperatorState, now epoch.Slot, l epoch.Length) error {
	if signer != operator.Admin {
		return ErrNcnOperatorAdminInvalid
	}
	if err := r.WarmupOperator(now, l); err != nil {
		return err
	}
	return svc.Accounts.Put(ctx, r.Address(), *r)
}

// CooldownNcnOperatorStateOperatorSide is the inverse of
// WarmupNcnOperatorStateOperatorSide.
func (svc *Service) CooldownNcnOperatorStateOperatorSide(ctx context.Context, operator *Operator, signer addr.Address, r *NcnOperatorState, now epoch.Slot, l epoch.Length) error {
	if signer != operator.Admin {
		return ErrNcnOperatorAdminInvalid
	}
	if err := r.CooldownOperator(now, l); err != nil {
		return err
	}
	return svc.Accounts.Put(ctx, r.Address(), *r)
}

// InitializeNcnVaultSlasherTicket creates the slasher authorization ticket,
// signed by the Ncn's slasher admin.
func (svc *Service) InitializeNcnVaultSlasherTicket(ctx context.Context, ncn *Ncn, signer, vault, slasher addr.Address, maxSlashablePerEpoch uint64, now epoch.Slot) (NcnVaultSlasherTicket, error) {
	if signer != ncn.SlasherAdmin {
		return NcnVaultSlasherTicket{}, ErrNcnAdminInvalid
	}
	t := NewNcnVaultSlasherTicket(ncn, vault, slasher, maxSlashablePerEpoch, now)
	key := t.Address()
	if svc.Accounts.Has(ctx, key) {
		return NcnVaultSlasherTicket{}, ErrRelationshipExists
	}
	if err := svc.Accounts.Put(ctx, key, t); err != nil {
		return NcnVaultSlasherTicket{}, err
	}
	return t, nil
}

// HarvestExcess sweeps an admin-reported excess lamport-analogue balance
// from an Ncn or Operator's own PDA to a destination the caller names
// (spec §12 supplemented feature, grounded on original_source's
// harvest_lamports.rs). The core has no concept of rent; it only enforces
// that the signer is the account's primary admin and returns the amount
// to transfer, which the caller's ledger/host glue actually moves.
func (svc *Service) HarvestExcess(signer, admin addr.Address, excess uint64) (uint64, error) {
	if signer != admin {
		return 0, ErrNcnAdminInvalid
	}
	return excess, nil
}
