package restaking

import (
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
)

// Operator fee errors (spec §12 supplemented OperatorSetFee).
var (
	ErrOperatorFeeCapExceeded   = errors.New("restaking: operator fee exceeds cap")
	ErrOperatorFeeChangeTooSoon = errors.New("restaking: operator fee change too soon")
	ErrOperatorFeeBumpTooLarge  = errors.New("restaking: operator fee bump too large")
)

// Operator authorization errors (spec §7's error table names both kinds
// under the Authorization category).
var (
	// ErrOperatorAdminInvalid guards operations signed against the
	// Operator's own admin fields (e.g. SetFee).
	ErrOperatorAdminInvalid = errors.New("restaking: signer is not the operator's admin")
	// ErrNcnOperatorAdminInvalid guards operations on the Operator's half
	// of a bilateral NcnOperatorState record, distinct from a plain
	// Operator-admin check.
	ErrNcnOperatorAdminInvalid = errors.New("restaking: signer is not the operator's admin for this ncn-operator relationship")
)

const (
	// MaxOperatorFeeBps caps OperatorFeeBps at 100% of 10000 bps.
	MaxOperatorFeeBps = 10_000
	// OperatorFeeRateOfChangeSlots is the minimum slot gap between fee
	// changes, mirroring the Vault's fee_rate_of_change_slots (spec §4.9).
	OperatorFeeRateOfChangeSlots = 9_000
	// OperatorFeeBumpBps bounds how far a single fee change may move,
	// mirroring the Vault's fee_bump_bps.
	OperatorFeeBumpBps = 1_000
)

// Operator is a principal that runs services for NCNs and receives
// delegation from vaults (GLOSSARY). Mirrors Ncn's shape (spec §3.5).
type Operator struct {
	Base  addr.Address
	Index uint64

	Admin         addr.Address
	NcnAdmin      addr.Address
	VaultAdmin    addr.Address
	DelegateAdmin addr.Address
	MetadataAdmin addr.Address

	NcnCount   uint64
	VaultCount uint64

	// OperatorFeeBps is the basis-points cut the operator charges NCNs for
	// its services (spec §12 supplemented feature, present in the
	// instruction table as OperatorSetFee but not detailed in the
	// distilled DATA MODEL).
	OperatorFeeBps    uint16
	LastFeeChangeSlot uint64
}

// Address returns the Operator's canonical derived address (spec §6:
// seeds "operator", base).
func (o Operator) Address() addr.Address {
	return addr.Derive(addr.RestakingProgram, "operator", o.Base)
}

// NewOperator creates a new Operator at the next config-assigned index.
func NewOperator(cfg *Config, base, admin addr.Address) Operator {
	o := Operator{
		Base:          base,
		Index:         cfg.OperatorCount,
		Admin:         admin,
		NcnAdmin:      admin,
		VaultAdmin:    admin,
		DelegateAdmin: admin,
		MetadataAdmin: admin,
	}
	cfg.OperatorCount++
	return o
}

// SetFee changes OperatorFeeBps under the same throttle discipline as
// Vault.SetFee (spec §4.9, generalized here per §12): the change must be
// at least OperatorFeeRateOfChangeSlots since the last change, move by no
// more than OperatorFeeBumpBps, and stay within MaxOperatorFeeBps. Signed
// by the Operator's own Admin (spec §7: OperatorAdminInvalid).
func (o *Operator) SetFee(currentSlot uint64, newFeeBps uint16, signer addr.Address) error {
	if signer != o.Admin {
		return ErrOperatorAdminInvalid
	}
	if newFeeBps > MaxOperatorFeeBps {
		return ErrOperatorFeeCapExceeded
	}
	if currentSlot-o.LastFeeChangeSlot < OperatorFeeRateOfChangeSlots {
		return ErrOperatorFeeChangeTooSoon
	}
	delta := int(newFeeBps) - int(o.OperatorFeeBps)
	if delta < 0 {
		delta = -delta
	}
	if delta > OperatorFeeBumpBps {
		return ErrOperatorFeeBumpTooLarge
	}
	o.OperatorFeeBps = newFeeBps
	o.LastFeeChangeSlot = currentSlot
	return nil
}
