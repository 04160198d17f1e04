// Package restaking implements the Restaking program: registration of
// Node-Consensus-Networks (NCNs) and Operators, and the opt-in
// relationship records that bind them (spec §3.4, §3.5, §4.2). It is
// grounded on the teacher's pkg/consensus config/registry machinery:
// config.go's Default.../Validate() pattern and validator_set.go's
// index-assigned, child-count-at-creation registry style.
package restaking

import (
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
)

// Config validation errors.
var (
	ErrConfigEpochLengthZero = errors.New("restaking: epoch_length must be non-zero")
	ErrConfigAlreadyInit     = errors.New("restaking: config already initialized")
)

// Config is the Restaking program's single global account (spec §9 "No
// global singletons" — lifecycle is InitializeConfig exactly once, then
// read-only except for counters and admin handoff).
type Config struct {
	Admin       addr.Address
	EpochLength uint64

	NcnCount      uint64
	OperatorCount uint64
}

// DefaultConfig returns mainnet-analogue defaults, mirroring the teacher's
// DefaultConsensusConfig constructor style (config.go).
func DefaultConfig(admin addr.Address) Config {
	return Config{
		Admin:       admin,
		EpochLength: 150,
	}
}

// Validate checks the configuration is internally consistent.
func (c Config) Validate() error {
	if c.EpochLength == 0 {
		return ErrConfigEpochLengthZero
	}
	return nil
}
