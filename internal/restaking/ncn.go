package restaking

import (
	"errors"

	"github.com/jito-foundation/restaking-sub002/internal/addr"
)

// Ncn authorization errors.
var (
	ErrNcnAdminInvalid = errors.New("restaking: signer is not the ncn's role admin")
)

// Ncn is a top-level principal: a set of operators offering a service
// secured by restaked capital (GLOSSARY). Fields mirror spec §3.5: a base
// identifier, role-specific admins, monotonic child counts, and a creation
// index.
type Ncn struct {
	Base  addr.Address
	Index uint64

	Admin         addr.Address
	OperatorAdmin addr.Address
	VaultAdmin    addr.Address
	SlasherAdmin  addr.Address
	DelegateAdmin addr.Address
	MetadataAdmin addr.Address

	OperatorCount uint64
	VaultCount    uint64
	SlasherCount  uint64
}

// Address returns the Ncn's canonical derived address (spec §6: seeds
// "ncn", base).
func (n Ncn) Address() addr.Address {
	return addr.Derive(addr.RestakingProgram, "ncn", n.Base)
}

// NewNcn creates a new Ncn at the next config-assigned index, all
// role admins defaulting to admin (spec §3.5 lists admin plus
// role-specific admins, which start out equal to admin until reassigned
// via SetSecondaryAdmin).
func NewNcn(cfg *Config, base, admin addr.Address) Ncn {
	n := Ncn{
		Base:          base,
		Index:         cfg.NcnCount,
		Admin:         admin,
		OperatorAdmin: admin,
		VaultAdmin:    admin,
		SlasherAdmin:  admin,
		DelegateAdmin: admin,
		MetadataAdmin: admin,
	}
	cfg.NcnCount++
	return n
}

// SetAdmin replaces the primary admin. Must be signed by the current admin;
// the caller is responsible for verifying the signer before calling this.
func (n *Ncn) SetAdmin(newAdmin addr.Address) {
	n.Admin = newAdmin
}

// SecondaryAdminRole names one of the Ncn's role-specific admin slots, for
// SetSecondaryAdmin (spec §12 supplemented feature).
type SecondaryAdminRole uint8

const (
	RoleOperatorAdmin SecondaryAdminRole = iota
	RoleVaultAdmin
	RoleSlasherAdmin
	RoleDelegateAdmin
	RoleMetadataAdmin
)

// SetSecondaryAdmin reassigns one role-specific admin slot. Immediately
// effective, no timelock (spec §12: neither the distilled spec nor the
// original source implements a proposal/accept handoff at this layer).
func (n *Ncn) SetSecondaryAdmin(role SecondaryAdminRole, newAdmin addr.Address) {
	switch role {
	case RoleOperatorAdmin:
		n.OperatorAdmin = newAdmin
	case RoleVaultAdmin:
		n.VaultAdmin = newAdmin
	case RoleSlasherAdmin:
		n.SlasherAdmin = newAdmin
	case RoleDelegateAdmin:
		n.DelegateAdmin = newAdmin
	case RoleMetadataAdmin:
		n.MetadataAdmin = newAdmin
	}
}
