package vault

import (
	"context"
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
	"github.com/jito-foundation/restaking-sub002/internal/store"
)

// Relationship-record errors for the Vault's side of a bilateral opt-in
// (spec §4.2), mirroring restaking.ErrRelationshipExists.
var ErrVaultRelationshipExists = errors.New("vault: relationship record already exists")

// Service ties the pure relationship-record constructors in relationship.go
// to an Accounts store, enforcing the existence/admin preconditions spec
// §4.2 requires of every relationship-record operation — the Vault-side
// counterpart of restaking.Service.
type Service struct {
	Accounts store.Accounts
}

// NewService wraps an Accounts store.
func NewService(accounts store.Accounts) *Service {
	return &Service{Accounts: accounts}
}

// InitializeVaultNcnTicket creates the Vault's side of a Vault<->Ncn
// opt-in. Signed by the Vault's NcnAdmin.
func (svc *Service) InitializeVaultNcnTicket(ctx context.Context, v *Vault, signer, ncn addr.Address, now epoch.Slot) (VaultNcnTicket, error) {
	if signer != v.NcnAdmin {
		return VaultNcnTicket{}, ErrVaultAdminInvalid
	}
	t := NewVaultNcnTicket(v, ncn, now)
	key := t.Address()
	if svc.Accounts.Has(ctx, key) {
		return VaultNcnTicket{}, ErrVaultRelationshipExists
	}
	if err := svc.Accounts.Put(ctx, key, t); err != nil {
		return VaultNcnTicket{}, err
	}
	return t, nil
}

// InitializeVaultOperatorDelegation creates the Vault's delegation record
// for an Operator. Signed by the Vault's OperatorAdmin.
func (svc *Service) InitializeVaultOperatorDelegation(ctx context.Context, v *Vault, signer, operator addr.Address, now epoch.Slot) (VaultOperatorDelegation, error) {
	if signer != v.OperatorAdmin {
		return VaultOperatorDelegation{}, ErrVaultAdminInvalid
	}
	r := NewVaultOperatorDelegation(v, operator, now)
	key := r.Address()
	if svc.Accounts.Has(ctx, key) {
		return VaultOperatorDelegation{}, ErrVaultRelationshipExists
	}
	if err := svc.Accounts.Put(ctx, key, r); err != nil {
		return VaultOperatorDelegation{}, err
	}
	return r, nil
}

// InitializeVaultNcnSlasherTicket creates the Vault's slasher
// authorization ticket for an (ncn, slasher) pair. Signed by the Vault's
// SlasherAdmin.
func (svc *Service) InitializeVaultNcnSlasherTicket(ctx context.Context, v *Vault, signer, ncn, slasher addr.Address, maxSlashablePerEpoch uint64, now epoch.Slot) (VaultNcnSlasherTicket, error) {
	if signer != v.SlasherAdmin {
		return VaultNcnSlasherTicket{}, ErrVaultAdminInvalid
	}
	t := NewVaultNcnSlasherTicket(v, ncn, slasher, maxSlashablePerEpoch, now)
	key := t.Address()
	if svc.Accounts.Has(ctx, key) {
		return VaultNcnSlasherTicket{}, ErrVaultRelationshipExists
	}
	if err := svc.Accounts.Put(ctx, key, t); err != nil {
		return VaultNcnSlasherTicket{}, err
	}
	return t, nil
}
