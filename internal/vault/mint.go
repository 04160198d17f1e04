package vault

import (
	"context"
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
	"github.com/jito-foundation/restaking-sub002/internal/ledger"
)

// Mint errors (spec §4.4).
var (
	ErrSlippage              = errors.New("vault: resulting vrt below min_amount_out")
	ErrVaultCapacityExceeded = errors.New("vault: deposit would exceed deposit_capacity")
	ErrVrtMintMismatch       = errors.New("vault: vrt mint does not match vault's configured mint")
)

// MintResult reports the amounts Mint computed, for the caller to
// surface to the depositor / log.
type MintResult struct {
	GrossVrt uint64
	FeeVrt   uint64
	UserVrt  uint64
}

// Mint issues VRT against a deposit of the supported token (spec §4.4).
// depositor pays amountIn and receives the user share of the VRT; the fee
// share is minted to v.FeeWallet. If the Vault's MintBurnAdmin is non-zero,
// signer must match it. A DepositCapacity of zero means no capacity limit.
func Mint(ctx context.Context, tl ledger.TokenLedger, v *Vault, now epoch.Slot, l epoch.Length,
	vrtMint addr.Address, depositor addr.Address, amountIn, minAmountOut uint64, signer addr.Address) (MintResult, error) {

	if v.IsPaused {
		return MintResult{}, ErrVaultPaused
	}
	if err := v.CheckUpdateStateOK(now, l); err != nil {
		return MintResult{}, err
	}
	if vrtMint != v.VrtMint {
		return MintResult{}, ErrVrtMintMismatch
	}
	if v.MintBurnAdmin != (addr.Address{}) && signer != v.MintBurnAdmin {
		return MintResult{}, ErrVaultAdminInvalid
	}

	var grossVrt uint64
	var err error
	if v.VrtSupply == 0 {
		grossVrt = amountIn
	} else {
		grossVrt, err = mulDivCeil(amountIn, v.VrtSupply, v.TokensDeposited)
		if err != nil {
			return MintResult{}, err
		}
	}

	feeVrt, err := mulDivCeil(grossVrt, uint64(v.DepositFeeBps), 10_000)
	if err != nil {
		return MintResult{}, err
	}
	userVrt := grossVrt - feeVrt
	if userVrt < minAmountOut {
		return MintResult{}, ErrSlippage
	}

	newTokensDeposited := v.TokensDeposited + amountIn
	if v.DepositCapacity != 0 && newTokensDeposited > v.DepositCapacity {
		return MintResult{}, ErrVaultCapacityExceeded
	}

	if err := tl.Transfer(ctx, v.SupportedMint, depositor, v.Address(), amountIn); err != nil {
		return MintResult{}, err
	}
	if err := tl.Mint(ctx, v.VrtMint, depositor, userVrt); err != nil {
		return MintResult{}, err
	}
	if err := tl.Mint(ctx, v.VrtMint, v.FeeWallet, feeVrt); err != nil {
		return MintResult{}, err
	}

	v.TokensDeposited = newTokensDeposited
	v.VrtSupply += grossVrt

	return MintResult{GrossVrt: grossVrt, FeeVrt: feeVrt, UserVrt: userVrt}, nil
}
