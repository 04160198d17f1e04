// Package delegation implements DelegationState, the tri-bucket
// (staked / enqueued-for-cooldown / cooling-down) allocation tracker that
// both a Vault and each of its VaultOperatorDelegation records carry
// (spec §3.3). It is grounded on the teacher's epoch_processor.go, whose
// processSlashings/processEffectiveBalanceUpdates perform the same kind of
// bucketed, checked-arithmetic balance surgery once per epoch, and on
// validator.go's decreaseBal floor-at-zero helper.
package delegation

import (
	"errors"

	"github.com/holiman/uint256"
)

// ErrOverflow is returned by any operation whose checked arithmetic would
// wrap a uint64. Per spec §3.3/§7 this is always fatal: never silently
// recovered.
var ErrOverflow = errors.New("delegation: arithmetic overflow")

// ErrUnderflow is returned when a debit exceeds the bucket it is taken from.
var ErrUnderflow = errors.New("delegation: arithmetic underflow")

// AllocationMethod selects how undelegate_for_withdrawal and the vault
// update engine's forced-unstake pass choose which buckets/operators to
// debit. Only Greedy is defined today (spec §3.7), but the type is a tagged
// variant so a future method has somewhere to live.
type AllocationMethod uint8

const (
	// Greedy drains an operator (or a bucket) fully before moving to the
	// next, rather than spreading the debit proportionally.
	Greedy AllocationMethod = iota
)

// State is the tri-bucket DelegationState (spec §3.3). All fields are u64,
// all mutation is checked arithmetic, and overflow/underflow is always
// fatal — never clamp, never ignore.
type State struct {
	StakedAmount              uint64
	EnqueuedForCooldownAmount uint64
	CoolingDownAmount         uint64
}

// Total returns staked + enqueued + cooling_down.
func (s State) Total() uint64 {
	return s.StakedAmount + s.EnqueuedForCooldownAmount + s.CoolingDownAmount
}

// WithdrawableForThisEpoch returns the portion of Total that is already
// committed to leaving and must never be debited again this epoch:
// enqueued + cooling_down.
func (s State) WithdrawableForThisEpoch() uint64 {
	return s.EnqueuedForCooldownAmount + s.CoolingDownAmount
}

// Delegate adds n to staked_amount.
func (s *State) Delegate(n uint64) error {
	sum, carry := addChecked(s.StakedAmount, n)
	if carry {
		return ErrOverflow
	}
	s.StakedAmount = sum
	return nil
}

// Cooldown moves n units from staked into enqueued-for-cooldown:
// staked -= n, enqueued += n. Total is unchanged.
func (s *State) Cooldown(n uint64) error {
	if s.StakedAmount < n {
		return ErrUnderflow
	}
	sum, carry := addChecked(s.EnqueuedForCooldownAmount, n)
	if carry {
		return ErrOverflow
	}
	s.StakedAmount -= n
	s.EnqueuedForCooldownAmount = sum
	return nil
}

// UndelegateForWithdrawal is the caller-facing entry point used when a
// withdrawal cohort needs more underlying unstaked than is already queued.
// method is carried for future allocation variants; today only Greedy
// exists, and at this single-State granularity Greedy degenerates to
// Cooldown (the caller selects *which operator* to debit — see
// internal/vault's crank loop, which drains one operator fully before
// moving to the next).
func (s *State) UndelegateForWithdrawal(n uint64, method AllocationMethod) error {
	_ = method
	return s.Cooldown(n)
}

// Slash distributes a debit of n proportionally across the three buckets
// (weighted by each bucket's share of Total), then assigns any rounding
// dust to cooling_down; whatever cooling_down cannot cover is taken from
// staked, then from enqueued_for_cooldown. No bucket may go negative; uint256
// widens the intermediate products the way the teacher's reward-penalty
// math widens effective-balance products before dividing (epoch_processor.go
// processRewardsAndPenalties).
func (s *State) Slash(n uint64) error {
	total := s.Total()
	if n > total {
		return ErrUnderflow
	}
	if n == 0 {
		return nil
	}

	fromStaked := proportionalShare(n, s.StakedAmount, total)
	fromEnqueued := proportionalShare(n, s.EnqueuedForCooldownAmount, total)
	fromCooling := n - fromStaked - fromEnqueued // dust to the last bucket

	// fromCooling can exceed s.CoolingDownAmount only if rounding pushed the
	// dust past what's available; reclaim the excess from staked/enqueued in
	// that order, since cooling_down is the bucket closest to leaving and
	// must never go negative.
	if fromCooling > s.CoolingDownAmount {
		excess := fromCooling - s.CoolingDownAmount
		fromCooling = s.CoolingDownAmount
		take := min64(excess, s.StakedAmount-fromStaked)
		fromStaked += take
		excess -= take
		fromEnqueued += excess
	}

	if fromStaked > s.StakedAmount || fromEnqueued > s.EnqueuedForCooldownAmount || fromCooling > s.CoolingDownAmount {
		return ErrUnderflow
	}

	s.StakedAmount -= fromStaked
	s.EnqueuedForCooldownAmount -= fromEnqueued
	s.CoolingDownAmount -= fromCooling
	return nil
}

// proportionalShare computes floor(n * bucket / total) using a widened
// uint256 intermediate so n*bucket never overflows a uint64.
func proportionalShare(n, bucket, total uint64) uint64 {
	if total == 0 || bucket == 0 {
		return 0
	}
	num := new(uint256.Int).Mul(uint256.NewInt(n), uint256.NewInt(bucket))
	num.Div(num, uint256.NewInt(total))
	return num.Uint64()
}

// Update is called once per vault-operator delegation per epoch by the
// vault update engine's crank step (spec §3.3/§4.3 step 2.3):
// cooling_down is dropped, enqueued moves into cooling_down, enqueued := 0.
// It is idempotent only in the sense that calling it twice in the same
// epoch is a caller bug the crank index discipline prevents — Update itself
// has no epoch awareness and always performs the shift.
func (s *State) Update() {
	s.CoolingDownAmount = s.EnqueuedForCooldownAmount
	s.EnqueuedForCooldownAmount = 0
}

// Add accumulates other into s — used by the vault update tracker to fold
// each operator's post-crank DelegationState into a running vault-wide
// total (spec §4.3 step 2.4). Returns ErrOverflow on any field overflow.
func (s *State) Add(other State) error {
	staked, c1 := addChecked(s.StakedAmount, other.StakedAmount)
	enq, c2 := addChecked(s.EnqueuedForCooldownAmount, other.EnqueuedForCooldownAmount)
	cool, c3 := addChecked(s.CoolingDownAmount, other.CoolingDownAmount)
	if c1 || c2 || c3 {
		return ErrOverflow
	}
	s.StakedAmount = staked
	s.EnqueuedForCooldownAmount = enq
	s.CoolingDownAmount = cool
	return nil
}

func addChecked(a, b uint64) (sum uint64, overflow bool) {
	sum = a + b
	return sum, sum < a
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
