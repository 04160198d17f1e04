// Package vault implements the Vault program: share-accounting root,
// epoch-synchronous update engine, mint/burn/withdrawal, slashing, and fee
// administration (spec §3.6-§3.8, §4.3-§4.10). It is grounded on the
// teacher's pkg/consensus epoch_processor.go (the per-epoch multi-step
// update loop this package's update engine generalizes) and validator.go
// (checked-arithmetic balance mutation style).
package vault

import "errors"

// Config validation errors.
var (
	ErrConfigEpochLengthZero = errors.New("vault: epoch_length must be non-zero")
	ErrConfigFeeCapTooHigh   = errors.New("vault: fee cap exceeds 10000 bps")
)

// Config is the Vault program's single global account (spec §9 "No global
// singletons"): epoch length, fee caps, and global counters.
type Config struct {
	EpochLength uint64

	// DepositFeeCapBps, WithdrawalFeeCapBps, RewardFeeCapBps bound each
	// Vault's corresponding fee (spec §3.6, §4.9).
	DepositFeeCapBps    uint16
	WithdrawalFeeCapBps uint16
	RewardFeeCapBps     uint16

	// FeeRateOfChangeSlots and FeeBumpBps throttle fee changes (spec §4.9).
	FeeRateOfChangeSlots uint64
	FeeBumpBps           uint16

	// RewardFeeToleranceBps bounds how far the effective reward-fee rate
	// solved in UpdateVaultBalance may drift from the nominal reward_fee_bps
	// before being rejected (spec §4.8, §9 "Open question: reward-fee
	// tolerance check" — lifted into Config per that note rather than
	// hard-coded per call site).
	RewardFeeToleranceBps uint16

	VaultCount uint64
}

// DefaultConfig returns conservative defaults, mirroring the teacher's
// DefaultConsensusConfig constructor style.
func DefaultConfig() Config {
	return Config{
		EpochLength:           150,
		DepositFeeCapBps:      1000,
		WithdrawalFeeCapBps:   1000,
		RewardFeeCapBps:       2000,
		FeeRateOfChangeSlots:  9_000,
		FeeBumpBps:            1_000,
		RewardFeeToleranceBps: 50,
	}
}

// Validate checks the configuration is internally consistent.
func (c Config) Validate() error {
	if c.EpochLength == 0 {
		return ErrConfigEpochLengthZero
	}
	const maxBps = 10_000
	if c.DepositFeeCapBps > maxBps || c.WithdrawalFeeCapBps > maxBps || c.RewardFeeCapBps > maxBps {
		return ErrConfigFeeCapTooHigh
	}
	return nil
}
