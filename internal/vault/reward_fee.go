package vault

import (
	"context"
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/ledger"
)

// ErrRewardFeeOutOfTolerance guards the reward-fee solve against precision
// loss at tiny ratios (spec §4.8, §9 "Open question: reward-fee tolerance
// check" — the tolerance is Config.RewardFeeToleranceBps, not hard-coded
// per call site).
var ErrRewardFeeOutOfTolerance = errors.New("vault: effective reward fee rate out of tolerance")

// UpdateVaultBalanceResult reports the VRT minted to the fee wallet.
type UpdateVaultBalanceResult struct {
	Profit       uint64
	RewardFeeVrt uint64
}

// UpdateVaultBalance reconciles tokens_deposited against the vault's
// actual supported-token balance after out-of-band rewards land, minting
// the fee wallet's cut of the profit in VRT (spec §4.8).
//
// reward_fee_vrt solves fee_vrt/(vrt_supply+fee_vrt) = target/new_balance,
// where target = profit * reward_fee_bps/10000, i.e.
// fee_vrt = vrt_supply * target / (new_balance - target).
func UpdateVaultBalance(ctx context.Context, tl ledger.TokenLedger, v *Vault, cfg Config, newBalance uint64) (UpdateVaultBalanceResult, error) {
	if newBalance <= v.TokensDeposited {
		return UpdateVaultBalanceResult{}, nil
	}
	profit := newBalance - v.TokensDeposited

	target, err := mulDivFloor(profit, uint64(v.RewardFeeBps), 10_000)
	if err != nil {
		return UpdateVaultBalanceResult{}, err
	}
	if target == 0 || newBalance <= target {
		v.TokensDeposited = newBalance
		return UpdateVaultBalanceResult{Profit: profit}, nil
	}

	rewardFeeVrt, err := mulDivFloor(v.VrtSupply, target, newBalance-target)
	if err != nil {
		return UpdateVaultBalanceResult{}, err
	}

	if err := checkRewardFeeEffectiveRate(rewardFeeVrt, v.VrtSupply, target, newBalance, cfg.RewardFeeToleranceBps); err != nil {
		return UpdateVaultBalanceResult{}, err
	}

	if err := tl.Mint(ctx, v.VrtMint, v.FeeWallet, rewardFeeVrt); err != nil {
		return UpdateVaultBalanceResult{}, err
	}

	v.TokensDeposited = newBalance
	v.VrtSupply += rewardFeeVrt

	return UpdateVaultBalanceResult{Profit: profit, RewardFeeVrt: rewardFeeVrt}, nil
}

// checkRewardFeeEffectiveRate verifies the solved fee_vrt, expressed back
// as a claim value against new_balance, lands within toleranceBps of target
// (rounded up); a difference of at most one token unit is always accepted.
func checkRewardFeeEffectiveRate(feeVrt, vrtSupply, target, newBalance uint64, toleranceBps uint16) error {
	if feeVrt == 0 {
		return nil
	}
	claimValue, err := mulDivFloor(feeVrt, newBalance, vrtSupply+feeVrt)
	if err != nil {
		return err
	}
	diff := int64(claimValue) - int64(target)
	if diff < 0 {
		diff = -diff
	}
	allowed, err := mulDivCeil(target, uint64(toleranceBps), 10_000)
	if err != nil {
		return err
	}
	if uint64(diff) > allowed && uint64(diff) > 1 {
		return ErrRewardFeeOutOfTolerance
	}
	return nil
}
