package vault

import (
	"errors"
	"math"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/delegation"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
	"github.com/jito-foundation/restaking-sub002/internal/log"
)

// Vault update engine errors (spec §4.3, §7).
var (
	ErrVaultUpdateAlreadyInitialized  = errors.New("vault: update already initialized for this epoch")
	ErrVaultUpdateIncorrectIndex      = errors.New("vault: crank called with incorrect index")
	ErrVaultUpdateStateNotFinished    = errors.New("vault: update state tracker not finished cranking")
	ErrVaultUpdateOverflow            = errors.New("vault: arithmetic overflow during update")
)

// sentinelLastIndex is the MAX value last_updated_index starts at, so the
// first crank's assertion (index == last_updated_index+1, or 0 if first)
// can be expressed uniformly without a separate "never cranked" flag
// (spec §3.7).
const sentinelLastIndex = math.MaxUint64

// WithdrawalAllocationMethod mirrors delegation.AllocationMethod at the
// tracker level (spec §3.7: "today only Greedy is defined").
type WithdrawalAllocationMethod = delegation.AllocationMethod

// VaultUpdateStateTracker is the ephemeral, one-per-(vault,epoch) cooperative
// crank state (spec §3.7). Created by Initialize, mutated by each Crank,
// consumed by Close.
type VaultUpdateStateTracker struct {
	Vault    addr.Address
	NcnEpoch epoch.Epoch

	LastUpdatedIndex uint64

	DelegationState delegation.State

	AdditionalAssetsNeedUnstaking uint64
	WithdrawalAllocationMethod    WithdrawalAllocationMethod
}

// Address returns the tracker's canonical derived address (spec §6: seeds
// "vault_update_state_tracker", vault, epoch_le_bytes).
func (tr VaultUpdateStateTracker) Address() addr.Address {
	return addr.DeriveEpoched(addr.VaultProgram, "vault_update_state_tracker", uint64(tr.NcnEpoch), tr.Vault)
}

// InitializeVaultUpdateStateTracker creates the tracker for (vault,
// current epoch) and computes additional_assets_need_unstaking from the
// already-enqueued VRT withdrawal cohort at the current exchange rate
// (spec §4.3 step 1). Fails if the vault is already up-to-date.
func InitializeVaultUpdateStateTracker(v Vault, now epoch.Slot, l epoch.Length, method WithdrawalAllocationMethod) (VaultUpdateStateTracker, error) {
	if v.IsUpToDate(now, l) {
		return VaultUpdateStateTracker{}, ErrVaultIsUpdated
	}

	needUnstaking, err := amountNeededForWithdrawals(v)
	if err != nil {
		return VaultUpdateStateTracker{}, err
	}

	return VaultUpdateStateTracker{
		Vault:                         v.Address(),
		NcnEpoch:                      l.At(now),
		LastUpdatedIndex:              sentinelLastIndex,
		AdditionalAssetsNeedUnstaking: needUnstaking,
		WithdrawalAllocationMethod:    method,
	}, nil
}

// amountNeededForWithdrawals computes the supported-token amount that
// must enter cooldown this epoch so the enqueued VRT cohort can be
// honored next epoch: vrt_enqueued_for_cooldown_amount converted at the
// current exchange rate, floor division (net of no program fee model
// beyond the ratio itself — the withdrawal fee is charged at burn time,
// not here).
func amountNeededForWithdrawals(v Vault) (uint64, error) {
	if v.VrtSupply == 0 || v.VrtEnqueuedForCooldownAmount == 0 {
		return 0, nil
	}
	return mulDivFloor(v.VrtEnqueuedForCooldownAmount, v.TokensDeposited, v.VrtSupply)
}

// Crank advances the tracker by exactly one VaultOperatorDelegation, in
// strict index order (spec §4.3 step 2). opDelegation is the caller's
// current copy of the operator's record; Crank returns the mutated copy
// for the caller to persist alongside the tracker.
func (tr *VaultUpdateStateTracker) Crank(opDelegation VaultOperatorDelegation, logger *log.Logger) (VaultOperatorDelegation, error) {
	expected := uint64(0)
	if tr.LastUpdatedIndex != sentinelLastIndex {
		expected = tr.LastUpdatedIndex + 1
	}
	if opDelegation.Index != expected {
		return opDelegation, ErrVaultUpdateIncorrectIndex
	}

	if tr.AdditionalAssetsNeedUnstaking > 0 {
		// Greedy: drain this operator's staked amount fully (bounded by
		// what's staked there) before moving to the next crank.
		debit := opDelegation.DelegationState.StakedAmount
		if debit > tr.AdditionalAssetsNeedUnstaking {
			debit = tr.AdditionalAssetsNeedUnstaking
		}
		if debit > 0 {
			if err := opDelegation.DelegationState.UndelegateForWithdrawal(debit, delegation.Greedy); err != nil {
				return opDelegation, err
			}
			tr.AdditionalAssetsNeedUnstaking -= debit
		}
	}

	opDelegation.DelegationState.Update()

	if err := tr.DelegationState.Add(opDelegation.DelegationState); err != nil {
		return opDelegation, err
	}

	tr.LastUpdatedIndex = opDelegation.Index

	if logger != nil {
		logger.Info("cranked vault operator delegation",
			"vault", tr.Vault, "operator", opDelegation.Operator, "index", opDelegation.Index)
	}

	return opDelegation, nil
}

// Close finalizes the update cycle (spec §4.3 step 3): folds the tracker's
// accumulated delegation state into the Vault, advances
// last_full_state_update_slot, and rotates the VRT withdrawal cohort. It
// does not snapshot tokens_deposited: BurnWithdrawalTicket pays out at the
// exchange rate current when it runs. Succeeds only once every operator has
// been cranked (or there are no operators at all).
//
// If currentEpoch no longer matches the epoch the tracker was initialized
// in, the tracker is stale: Close logs a warning and returns the vault
// unchanged, signaling only that the tracker's storage may be reclaimed
// (spec §4.3 final paragraph).
func (tr VaultUpdateStateTracker) Close(v Vault, operatorCount uint64, now epoch.Slot, l epoch.Length, logger *log.Logger) (Vault, error) {
	if l.At(now) != tr.NcnEpoch {
		if logger != nil {
			logger.Warn("closing stale vault update state tracker", "vault", tr.Vault, "tracker_epoch", tr.NcnEpoch, "current_epoch", l.At(now))
		}
		return v, nil
	}

	if operatorCount > 0 && tr.LastUpdatedIndex != operatorCount-1 {
		return v, ErrVaultUpdateStateNotFinished
	}

	epochsElapsed := uint64(1)
	if v.LastFullStateUpdateSlot > 0 {
		lastEpoch := l.At(epoch.Slot(v.LastFullStateUpdateSlot))
		if l.At(now) > lastEpoch {
			epochsElapsed = uint64(l.At(now) - lastEpoch)
		}
	}

	v.DelegationState = tr.DelegationState
	v.LastFullStateUpdateSlot = uint64(now)

	rotations := epochsElapsed
	if rotations > 2 {
		rotations = 2
	}
	for i := uint64(0); i < rotations; i++ {
		v.VrtReadyToClaimAmount += v.VrtCoolingDownAmount
		v.VrtCoolingDownAmount = v.VrtEnqueuedForCooldownAmount
		v.VrtEnqueuedForCooldownAmount = 0
	}

	if logger != nil {
		logger.Info("closed vault update state tracker", "vault", tr.Vault, "epoch", tr.NcnEpoch, "rotations", rotations)
		if epochsElapsed > 2 {
			logger.Warn("vault update cycle skipped epochs", "vault", tr.Vault, "epochs_elapsed", epochsElapsed)
		}
	}

	return v, nil
}
