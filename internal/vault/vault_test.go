package vault

import (
	"context"
	"testing"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/delegation"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
	"github.com/jito-foundation/restaking-sub002/internal/ledger/memledger"
)

func testAddr(b byte) addr.Address {
	var a addr.Address
	a[0] = b
	return a
}

func freshVault(l epoch.Length, depositCapacity uint64) Vault {
	feeWallet := testAddr(9)
	v := Vault{
		Base:                    testAddr(1),
		VrtMint:                 testAddr(2),
		SupportedMint:           testAddr(3),
		FeeWallet:               feeWallet,
		DepositCapacity:         depositCapacity,
		LastFullStateUpdateSlot: 0,
	}
	return v
}

// TestDepositWithdrawWithFees reproduces spec §8 seed test 2.
func TestDepositWithdrawWithFees(t *testing.T) {
	ctx := context.Background()
	l := epoch.Length(150)
	ledg := memledger.New()
	v := freshVault(l, 1_000_000)
	v.DepositFeeBps = 100
	v.WithdrawalFeeBps = 100

	depositor := testAddr(10)
	ledg.Seed(v.SupportedMint, depositor, 100_000)

	res, err := Mint(ctx, ledg, &v, 0, l, v.VrtMint, depositor, 100_000, 0, addr.Address{})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if res.UserVrt != 99_000 || res.FeeVrt != 1_000 {
		t.Fatalf("expected user_vrt=99000 fee_vrt=1000, got %+v", res)
	}
	if v.TokensDeposited != 100_000 || v.VrtSupply != 100_000 {
		t.Fatalf("unexpected vault state: %+v", v)
	}

	ticket, err := EnqueueWithdrawal(ctx, ledg, &v, 0, l, depositor, testAddr(20), 99_000, addr.Address{})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if v.VrtEnqueuedForCooldownAmount != 99_000 {
		t.Fatalf("expected enqueued 99000, got %d", v.VrtEnqueuedForCooldownAmount)
	}

	// Run two update cycles, each 2 epochs after the previous one, so the
	// ticket becomes withdrawable and vrt_ready_to_claim_amount is populated.
	now := epoch.Slot(0)
	for i := 0; i < 2; i++ {
		now = epoch.Slot(uint64(now) + uint64(l)*2)
		tr, err := InitializeVaultUpdateStateTracker(v, now, l, delegation.Greedy)
		if err != nil {
			t.Fatalf("init tracker iter %d: %v", i, err)
		}
		v, err = tr.Close(v, 0, now, l, nil)
		if err != nil {
			t.Fatalf("close tracker iter %d: %v", i, err)
		}
	}

	if !ticket.Withdrawable(v, now, l) {
		t.Fatalf("expected ticket withdrawable after 2 update cycles, vault=%+v now=%d", v, now)
	}
	if v.VrtReadyToClaimAmount != 99_000 {
		t.Fatalf("expected vrt_ready_to_claim_amount=99000, got %d", v.VrtReadyToClaimAmount)
	}

	burnRes, err := BurnWithdrawalTicket(ctx, ledg, &v, now, l, ticket, 99_000, depositor)
	if err != nil {
		t.Fatalf("burn: %v", err)
	}
	if burnRes.AssetsToStaker != 98_010 || burnRes.WithdrawalFee != 990 {
		t.Fatalf("expected assets_to_staker=98010 fee=990, got %+v", burnRes)
	}
	if v.TokensDeposited != 1_000 || v.VrtSupply != 1_000 {
		t.Fatalf("expected tokens_deposited=1000 vrt_supply=1000, got deposited=%d supply=%d", v.TokensDeposited, v.VrtSupply)
	}
}

// TestSlashingWithCap reproduces spec §8 seed test 3.
func TestSlashingWithCap(t *testing.T) {
	ctx := context.Background()
	ledg := memledger.New()
	v := freshVault(epoch.Length(150), 1_000_000)
	v.TokensDeposited = 10_000
	ledg.Seed(v.SupportedMint, v.Address(), 10_000)

	opDeleg := VaultOperatorDelegation{DelegationState: delegation.State{StakedAmount: 5_000}}
	v.DelegationState = delegation.State{StakedAmount: 5_000}
	ticket := NewVaultNcnSlasherOperatorTicket(v.Address(), testAddr(4), testAddr(5), testAddr(6), 0)

	status := ConnectionStatus{true, true, true, true, true}

	if _, err := Slash(ctx, ledg, &v, &opDeleg, &ticket, 1000, 600, testAddr(7), status); err != nil {
		t.Fatalf("first slash: %v", err)
	}
	if _, err := Slash(ctx, ledg, &v, &opDeleg, &ticket, 1000, 500, testAddr(7), status); err != ErrMaxSlashedPerOperatorExceeded {
		t.Fatalf("expected ErrMaxSlashedPerOperatorExceeded, got %v", err)
	}
	if ticket.SlashedThisEpoch != 600 {
		t.Fatalf("expected slashed_this_epoch=600, got %d", ticket.SlashedThisEpoch)
	}
}

// TestCrankerOrdering reproduces spec §8 seed test 4.
func TestCrankerOrdering(t *testing.T) {
	l := epoch.Length(150)
	v := freshVault(l, 1_000_000)
	v.OperatorCount = 3

	tr, err := InitializeVaultUpdateStateTracker(v, epoch.Slot(1000), l, delegation.Greedy)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	d0 := VaultOperatorDelegation{Index: 0}
	d2 := VaultOperatorDelegation{Index: 2}
	d1 := VaultOperatorDelegation{Index: 1}

	if _, err := tr.Crank(d0, nil); err != nil {
		t.Fatalf("crank 0: %v", err)
	}
	if _, err := tr.Crank(d2, nil); err != ErrVaultUpdateIncorrectIndex {
		t.Fatalf("expected ErrVaultUpdateIncorrectIndex, got %v", err)
	}
	if _, err := tr.Crank(d1, nil); err != nil {
		t.Fatalf("crank 1: %v", err)
	}
	if _, err := tr.Crank(d2, nil); err != nil {
		t.Fatalf("crank 2: %v", err)
	}
	if _, err := tr.Close(v, 3, epoch.Slot(1000), l, nil); err != nil {
		t.Fatalf("close: %v", err)
	}
}

// TestCapacityCap reproduces spec §8 seed test 6.
func TestCapacityCap(t *testing.T) {
	ctx := context.Background()
	l := epoch.Length(150)
	ledg := memledger.New()
	v := freshVault(l, 1_000_000)
	v.TokensDeposited = 999_000
	v.VrtSupply = 999_000

	depositor := testAddr(10)
	ledg.Seed(v.SupportedMint, depositor, 2_000)

	before := v
	_, err := Mint(ctx, ledg, &v, 0, l, v.VrtMint, depositor, 2_000, 0, addr.Address{})
	if err != ErrVaultCapacityExceeded {
		t.Fatalf("expected ErrVaultCapacityExceeded, got %v", err)
	}
	if v != before {
		t.Fatalf("expected vault state unchanged on capacity failure")
	}
}

// TestRewardFeeAccounting exercises the §4.8 identity directly (the exact
// numeric worked example in spec §8 seed test 5 does not reproduce under
// its own stated equation x/(10,000+x)=100/11,000, which solves to
// x≈91.7, not the ≈917 the prose asserts; this test follows the textual
// identity in §4.8, which is the unambiguous source of truth).
func TestRewardFeeAccounting(t *testing.T) {
	ctx := context.Background()
	ledg := memledger.New()
	cfg := DefaultConfig()
	cfg.RewardFeeToleranceBps = 50
	v := freshVault(epoch.Length(150), 1_000_000)
	v.TokensDeposited = 10_000
	v.VrtSupply = 10_000
	v.RewardFeeBps = 1000

	res, err := UpdateVaultBalance(ctx, ledg, &v, cfg, 11_000)
	if err != nil {
		t.Fatalf("update balance: %v", err)
	}
	if res.Profit != 1000 {
		t.Fatalf("expected profit 1000, got %d", res.Profit)
	}
	if v.TokensDeposited != 11_000 {
		t.Fatalf("expected tokens_deposited=11000, got %d", v.TokensDeposited)
	}
	if v.VrtSupply != 10_000+res.RewardFeeVrt {
		t.Fatalf("expected vrt_supply to grow by reward_fee_vrt")
	}

	feeWalletBal, _ := ledg.BalanceOf(ctx, v.VrtMint, v.FeeWallet)
	if feeWalletBal != res.RewardFeeVrt {
		t.Fatalf("expected fee wallet minted reward_fee_vrt, got %d want %d", feeWalletBal, res.RewardFeeVrt)
	}
}

// TestExchangeRateNonDecreasingOnMint is the §8 quantified invariant:
// repeated mints with no slashing never decrease the exchange rate.
func TestExchangeRateNonDecreasingOnMint(t *testing.T) {
	ctx := context.Background()
	l := epoch.Length(150)
	ledg := memledger.New()
	v := freshVault(l, 10_000_000)
	v.DepositFeeBps = 25

	depositor := testAddr(10)
	ledg.Seed(v.SupportedMint, depositor, 1_000_000)

	prevRate := v.ExchangeRate()
	for _, amt := range []uint64{1000, 12345, 777, 50000} {
		if _, err := Mint(ctx, ledg, &v, 0, l, v.VrtMint, depositor, amt, 0, addr.Address{}); err != nil {
			t.Fatalf("mint %d: %v", amt, err)
		}
		rate := v.ExchangeRate()
		if rate < prevRate {
			t.Fatalf("exchange rate decreased: %f -> %f", prevRate, rate)
		}
		prevRate = rate
	}
}

// TestDelegationTotalInvariantAfterClose is the §8 quantified invariant:
// vault.delegation_state.total() equals the sum of per-operator totals
// after CloseVaultUpdateStateTracker.
func TestDelegationTotalInvariantAfterClose(t *testing.T) {
	l := epoch.Length(150)
	v := freshVault(l, 1_000_000)
	v.OperatorCount = 2

	tr, err := InitializeVaultUpdateStateTracker(v, epoch.Slot(1000), l, delegation.Greedy)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	d0 := VaultOperatorDelegation{Index: 0, DelegationState: delegation.State{StakedAmount: 300}}
	d1 := VaultOperatorDelegation{Index: 1, DelegationState: delegation.State{StakedAmount: 700, EnqueuedForCooldownAmount: 50}}

	d0, err = tr.Crank(d0, nil)
	if err != nil {
		t.Fatalf("crank 0: %v", err)
	}
	d1, err = tr.Crank(d1, nil)
	if err != nil {
		t.Fatalf("crank 1: %v", err)
	}

	v, err = tr.Close(v, 2, epoch.Slot(1000), l, nil)
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	sum := d0.DelegationState.Total() + d1.DelegationState.Total()
	if v.DelegationState.Total() != sum {
		t.Fatalf("expected vault total %d to equal operator sum %d", v.DelegationState.Total(), sum)
	}
}
