package vault

import (
	"context"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
	"github.com/jito-foundation/restaking-sub002/internal/ledger"
)

// EnqueueWithdrawal creates a VaultStakerWithdrawalTicket and moves the
// staker's VRT into its holding account (spec §4.5).
func EnqueueWithdrawal(ctx context.Context, tl ledger.TokenLedger, v *Vault, now epoch.Slot, l epoch.Length,
	staker, base addr.Address, vrtAmount uint64, signer addr.Address) (VaultStakerWithdrawalTicket, error) {

	if v.IsPaused {
		return VaultStakerWithdrawalTicket{}, ErrVaultPaused
	}
	if err := v.CheckUpdateStateOK(now, l); err != nil {
		return VaultStakerWithdrawalTicket{}, err
	}
	if v.MintBurnAdmin != (addr.Address{}) && signer != v.MintBurnAdmin {
		return VaultStakerWithdrawalTicket{}, ErrVaultAdminInvalid
	}

	ticket := NewVaultStakerWithdrawalTicket(v.Address(), staker, base, vrtAmount, now)

	if err := tl.Transfer(ctx, v.VrtMint, staker, ticket.Address(), vrtAmount); err != nil {
		return VaultStakerWithdrawalTicket{}, err
	}

	v.VrtEnqueuedForCooldownAmount += vrtAmount

	return ticket, nil
}

// BurnResult reports the amounts BurnWithdrawalTicket computed.
type BurnResult struct {
	GrossAssets    uint64
	WithdrawalFee  uint64
	AssetsToStaker uint64
}

// BurnWithdrawalTicket redeems a withdrawable ticket against the supported
// token pool (spec §4.6). ticketAtaBalance is the live VRT balance of the
// ticket's associated token account, read independently of the recorded
// VrtAmountReserved field to resist a surplus-deposit attack; only the
// minimum of the two is honored.
func BurnWithdrawalTicket(ctx context.Context, tl ledger.TokenLedger, v *Vault, now epoch.Slot, l epoch.Length,
	ticket VaultStakerWithdrawalTicket, ticketAtaBalance uint64, staker addr.Address) (BurnResult, error) {

	if v.IsPaused {
		return BurnResult{}, ErrVaultPaused
	}
	if err := v.CheckUpdateStateOK(now, l); err != nil {
		return BurnResult{}, err
	}
	if !ticket.Withdrawable(*v, now, l) {
		return BurnResult{}, ErrTicketNotWithdrawable
	}

	vrt := ticket.VrtAmountReserved
	if ticketAtaBalance < vrt {
		vrt = ticketAtaBalance
	}

	grossAssets, err := mulDivFloor(vrt, v.TokensDeposited, v.VrtSupply)
	if err != nil {
		return BurnResult{}, err
	}

	withdrawalFee, err := mulDivCeil(grossAssets, uint64(v.WithdrawalFeeBps), 10_000)
	if err != nil {
		return BurnResult{}, err
	}
	if withdrawalFee > grossAssets {
		withdrawalFee = grossAssets
	}
	assetsToStaker := grossAssets - withdrawalFee

	if err := tl.Burn(ctx, v.VrtMint, ticket.Address(), vrt); err != nil {
		return BurnResult{}, err
	}
	if err := tl.Transfer(ctx, v.SupportedMint, v.Address(), staker, assetsToStaker); err != nil {
		return BurnResult{}, err
	}
	if err := tl.Transfer(ctx, v.SupportedMint, v.Address(), v.FeeWallet, withdrawalFee); err != nil {
		return BurnResult{}, err
	}

	v.VrtReadyToClaimAmount -= vrt
	v.TokensDeposited -= grossAssets
	v.VrtSupply -= vrt

	return BurnResult{GrossAssets: grossAssets, WithdrawalFee: withdrawalFee, AssetsToStaker: assetsToStaker}, nil
}
