package vault

import (
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
)

// Fee-change errors (spec §4.9).
var (
	ErrFeeChangeTooSoon = errors.New("vault: fee change attempted before fee_rate_of_change_slots elapsed")
	ErrFeeBumpTooLarge  = errors.New("vault: fee change exceeds fee_bump_bps")
	ErrFeeCapExceeded   = errors.New("vault: new fee exceeds configured cap")
)

// FeeKind names which of the Vault's three fee fields SetFee targets.
type FeeKind uint8

const (
	DepositFee FeeKind = iota
	WithdrawalFee
	RewardFee
)

// SetFee changes one of deposit/withdrawal/reward fee bps, gated by the
// rate-of-change throttle (spec §4.9): at least
// config.FeeRateOfChangeSlots must have elapsed since LastFeeChangeSlot,
// the change must move by no more than config.FeeBumpBps, and the new
// value must not exceed its cap.
func (v *Vault) SetFee(cfg Config, currentSlot uint64, kind FeeKind, newFeeBps uint16, signer addr.Address) error {
	if signer != v.FeeAdmin {
		return ErrVaultAdminInvalid
	}
	if currentSlot-v.LastFeeChangeSlot < cfg.FeeRateOfChangeSlots {
		return ErrFeeChangeTooSoon
	}

	var current uint16
	var cap16 uint16
	switch kind {
	case DepositFee:
		current, cap16 = v.DepositFeeBps, cfg.DepositFeeCapBps
	case WithdrawalFee:
		current, cap16 = v.WithdrawalFeeBps, cfg.WithdrawalFeeCapBps
	case RewardFee:
		current, cap16 = v.RewardFeeBps, cfg.RewardFeeCapBps
	}

	if newFeeBps > cap16 {
		return ErrFeeCapExceeded
	}
	delta := int(newFeeBps) - int(current)
	if delta < 0 {
		delta = -delta
	}
	if delta > int(cfg.FeeBumpBps) {
		return ErrFeeBumpTooLarge
	}

	switch kind {
	case DepositFee:
		v.DepositFeeBps = newFeeBps
	case WithdrawalFee:
		v.WithdrawalFeeBps = newFeeBps
	case RewardFee:
		v.RewardFeeBps = newFeeBps
	}
	v.LastFeeChangeSlot = currentSlot
	return nil
}

// SetDepositCapacity changes the deposit capacity. Signed by CapacityAdmin.
func (v *Vault) SetDepositCapacity(newCapacity uint64, signer addr.Address) error {
	if signer != v.CapacityAdmin {
		return ErrVaultAdminInvalid
	}
	v.DepositCapacity = newCapacity
	return nil
}

// SetIsPaused toggles the admin kill-switch. Signed by Admin.
func (v *Vault) SetIsPaused(paused bool, signer addr.Address) error {
	if signer != v.Admin {
		return ErrVaultAdminInvalid
	}
	v.IsPaused = paused
	return nil
}

// SetAdmin replaces the primary admin. Signed by the current Admin (spec.md
// §6 instruction table: SetAdmin).
func (v *Vault) SetAdmin(newAdmin addr.Address, signer addr.Address) error {
	if signer != v.Admin {
		return ErrVaultAdminInvalid
	}
	v.Admin = newAdmin
	return nil
}

// VaultSecondaryAdminRole names one of the Vault's role-specific admin
// slots, for SetSecondaryAdmin (spec.md §6 instruction table:
// SetSecondaryAdmin; see SPEC_FULL.md §12's role-specific-secondary-admin
// supplemented feature, also implemented on the Restaking side as
// restaking.SecondaryAdminRole).
type VaultSecondaryAdminRole uint8

const (
	RoleFeeAdmin VaultSecondaryAdminRole = iota
	RoleCapacityAdmin
	RoleDelegationAdmin
	RoleMintBurnAdmin
	RoleNcnAdmin
	RoleOperatorAdmin
	RoleSlasherAdmin
	RoleMetadataAdmin
	RoleDelegateAssetAdmin
)

// SetSecondaryAdmin reassigns one role-specific admin slot. Signed by the
// current Admin. Immediately effective, no timelock — same rationale as
// restaking.Ncn.SetSecondaryAdmin (SPEC_FULL.md §12: neither spec.md nor
// the original source implements a proposal/accept handoff at this layer).
func (v *Vault) SetSecondaryAdmin(role VaultSecondaryAdminRole, newAdmin addr.Address, signer addr.Address) error {
	if signer != v.Admin {
		return ErrVaultAdminInvalid
	}
	switch role {
	case RoleFeeAdmin:
		v.FeeAdmin = newAdmin
	case RoleCapacityAdmin:
		v.CapacityAdmin = newAdmin
	case RoleDelegationAdmin:
		v.DelegationAdmin = newAdmin
	case RoleMintBurnAdmin:
		v.MintBurnAdmin = newAdmin
	case RoleNcnAdmin:
		v.NcnAdmin = newAdmin
	case RoleOperatorAdmin:
		v.OperatorAdmin = newAdmin
	case RoleSlasherAdmin:
		v.SlasherAdmin = newAdmin
	case RoleMetadataAdmin:
		v.MetadataAdmin = newAdmin
	case RoleDelegateAssetAdmin:
		v.DelegateAssetAdmin = newAdmin
	}
	return nil
}
