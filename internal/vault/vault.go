package vault

import (
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/delegation"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
)

// Vault authorization/admin errors.
var (
	ErrVaultAdminInvalid = errors.New("vault: signer is not the vault's role admin")
	ErrVaultPaused       = errors.New("vault: vault is paused")
	ErrVaultUpdateNeeded = errors.New("vault: vault is not up to date this epoch")
	ErrVaultIsUpdated    = errors.New("vault: vault is already up to date this epoch")
)

// Vault is the root of share accounting (spec §3.6): a pool of a supported
// underlying token that issues VRT (vault-receipt-token) to depositors.
type Vault struct {
	Base  addr.Address
	Index uint64

	VrtMint       addr.Address
	SupportedMint addr.Address

	TokensDeposited uint64
	VrtSupply       uint64

	DelegationState delegation.State

	VrtEnqueuedForCooldownAmount uint64
	VrtCoolingDownAmount         uint64
	VrtReadyToClaimAmount        uint64

	DepositFeeBps     uint16
	WithdrawalFeeBps  uint16
	RewardFeeBps      uint16
	LastFeeChangeSlot uint64

	LastFullStateUpdateSlot uint64
	DepositCapacity         uint64
	IsPaused                bool

	Admin              addr.Address
	FeeAdmin           addr.Address
	CapacityAdmin      addr.Address
	DelegationAdmin    addr.Address
	MintBurnAdmin      addr.Address
	NcnAdmin           addr.Address
	OperatorAdmin      addr.Address
	SlasherAdmin       addr.Address
	MetadataAdmin      addr.Address
	DelegateAssetAdmin addr.Address
	FeeWallet          addr.Address

	OperatorCount uint64
	NcnCount      uint64
	SlasherCount  uint64
}

// Address returns the Vault's canonical derived address (spec §6: seeds
// "vault", base).
func (v Vault) Address() addr.Address {
	return addr.Derive(addr.VaultProgram, "vault", v.Base)
}

// NewVault creates a Vault at the next config-assigned index, every admin
// slot defaulting to the supplied admin.
func NewVault(cfg *Config, base, vrtMint, supportedMint, admin, feeWallet addr.Address, depositCapacity uint64) Vault {
	v := Vault{
		Base:               base,
		Index:              cfg.VaultCount,
		VrtMint:            vrtMint,
		SupportedMint:      supportedMint,
		DepositCapacity:    depositCapacity,
		Admin:              admin,
		FeeAdmin:           admin,
		CapacityAdmin:      admin,
		DelegationAdmin:    admin,
		MintBurnAdmin:      admin,
		NcnAdmin:           admin,
		OperatorAdmin:      admin,
		SlasherAdmin:       admin,
		MetadataAdmin:      admin,
		DelegateAssetAdmin: admin,
		FeeWallet:          feeWallet,
	}
	cfg.VaultCount++
	return v
}

// IsUpToDate reports whether last_full_state_update_slot falls in the
// current epoch (spec §4.3).
func (v Vault) IsUpToDate(now epoch.Slot, l epoch.Length) bool {
	return l.At(epoch.Slot(v.LastFullStateUpdateSlot)) == l.At(now)
}

// CheckUpdateStateOK is the guard every mutating, ratio-touching operation
// must call first (spec §4.3 concurrency contract).
func (v Vault) CheckUpdateStateOK(now epoch.Slot, l epoch.Length) error {
	if !v.IsUpToDate(now, l) {
		return ErrVaultUpdateNeeded
	}
	return nil
}

// ExchangeRate returns tokens_deposited/vrt_supply as a float64 purely for
// observability (logging/metrics); all accounting math uses the integer
// ceiling/floor formulas in mint.go/withdraw.go directly, never this
// value, per spec §9 "integer-only math, checked everywhere".
func (v Vault) ExchangeRate() float64 {
	if v.VrtSupply == 0 {
		return 1.0
	}
	return float64(v.TokensDeposited) / float64(v.VrtSupply)
}
