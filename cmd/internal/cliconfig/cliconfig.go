// Package cliconfig holds the flag set common to every CLI driver in this
// repository: restaking, vault, and the cranker daemon (spec §6 "CLI
// surface", SPEC_FULL §14). It follows the teacher's cmd/eth2030 style — a
// flag.FlagSet wrapped with a custom uint64 Value, rather than a
// third-party flags/cobra library — bound once here so every subcommand
// shares the same `--rpc-url`/`--commitment`/`--keypair`/program-id flags.
package cliconfig

import (
	"flag"
	"fmt"
	"strconv"
)

// Common holds the flags every instruction-mapped subcommand accepts.
type Common struct {
	RPCURL             string
	Commitment         string
	KeypairPath        string
	VaultProgramID     string
	RestakingProgramID string
}

// FlagSet wraps flag.FlagSet to add Uint64Var, mirroring the teacher's
// cmd/eth2030/flags.go flagSet.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet creates a FlagSet with ContinueOnError behavior.
func NewFlagSet(name string) *FlagSet {
	return &FlagSet{FlagSet: flag.NewFlagSet(name, flag.ContinueOnError)}
}

// Uint64Var defines a uint64 flag, since the standard flag package has no
// native uint64 support.
func (fs *FlagSet) Uint64Var(p *uint64, name string, value uint64, usage string) {
	fs.FlagSet.Var(&uint64Value{p: p}, name, usage)
	*p = value
}

type uint64Value struct {
	p *uint64
}

func (v *uint64Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(*v.p, 10)
}

func (v *uint64Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 value %q", s)
	}
	*v.p = n
	return nil
}

// BindCommon registers the shared flags onto fs and returns the struct
// they'll be parsed into.
func BindCommon(fs *FlagSet) *Common {
	c := &Common{}
	fs.StringVar(&c.RPCURL, "rpc-url", "http://127.0.0.1:8899", "JSON-RPC endpoint of the host runtime")
	fs.StringVar(&c.Commitment, "commitment", "confirmed", "commitment level for reads/writes")
	fs.StringVar(&c.KeypairPath, "keypair", "", "path to a keypair file, or usb:// for a hardware signer")
	fs.StringVar(&c.VaultProgramID, "vault-program-id", "", "Vault program address")
	fs.StringVar(&c.RestakingProgramID, "restaking-program-id", "", "Restaking program address")
	return c
}
