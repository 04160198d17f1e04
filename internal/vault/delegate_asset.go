package vault

import (
	"context"
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/ledger"
)

// ErrCannotDelegateSupportedMint guards delegate_asset_admin from ever
// touching the vault's own supported mint (spec §4.10: "May NEVER touch
// the supported mint").
var ErrCannotDelegateSupportedMint = errors.New("vault: delegate_asset_admin may not touch the supported mint")

// ApproveDelegate transfers amount of a non-supported mint held at the
// vault's address directly to delegate (spec §4.10). It records no
// allowance: the tokens leave the vault at once. Signed by
// DelegateAssetAdmin.
func ApproveDelegate(ctx context.Context, tl ledger.TokenLedger, v Vault, mint, delegate addr.Address, amount uint64, signer addr.Address) error {
	if signer != v.DelegateAssetAdmin {
		return ErrVaultAdminInvalid
	}
	if mint == v.SupportedMint {
		return ErrCannotDelegateSupportedMint
	}
	return tl.Transfer(ctx, mint, v.Address(), delegate, amount)
}

// RevokeDelegate checks that signer is the DelegateAssetAdmin and returns.
// It changes no state and does not return tokens that ApproveDelegate
// transferred.
func RevokeDelegate(v Vault, signer addr.Address) error {
	if signer != v.DelegateAssetAdmin {
		return ErrVaultAdminInvalid
	}
	return nil
}

// HarvestExcess sweeps an admin-reported excess balance (spec §12
// supplemented feature, grounded on original_source's
// withdraw_excess_lamports.rs). See restaking.Service.HarvestExcess for
// the identical pattern on the Restaking program's side.
func HarvestExcess(signer, admin addr.Address, excess uint64) (uint64, error) {
	if signer != admin {
		return 0, ErrVaultAdminInvalid
	}
	return excess, nil
}
