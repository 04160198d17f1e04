// Command restaking is the CLI driver for the Restaking program: NCN and
// Operator registration, bilateral opt-in relationships, and operator fee
// management.
//
// Usage:
//
//	restaking <subcommand> [flags]
//
// Subcommands:
//
//	ncn-create            print a freshly derived NCN account
//	operator-create        print a freshly derived Operator account
//	operator-set-fee       apply the fee rate-of-change rules to an operator
//	opt-in-demo             run the NCN<->Operator<->Vault opt-in walkthrough
//	version                 print version and exit
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jito-foundation/restaking-sub002/cmd/internal/cliconfig"
	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
	"github.com/jito-foundation/restaking-sub002/internal/restaking"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the entry point, returning an exit code. It takes args without
// the program name so it can be exercised directly from tests.
func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: restaking <subcommand> [flags]")
		return 2
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "version":
		fmt.Printf("restaking %s (commit %s)\n", version, commit)
		return 0
	case "ncn-create":
		return runNcnCreate(rest)
	case "operator-create":
		return runOperatorCreate(rest)
	case "operator-set-fee":
		return runOperatorSetFee(rest)
	case "opt-in-demo":
		return runOptInDemo(rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", sub)
		return 2
	}
}

func runNcnCreate(args []string) int {
	fs := cliconfig.NewFlagSet("ncn-create")
	common := cliconfig.BindCommon(fs)
	admin := fs.String("admin", "", "seed string the admin address is derived from")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	_ = common

	cfg := restaking.DefaultConfig(decodeAddr(*admin))
	base := decodeAddr("ncn-base:" + *admin)
	ncn := restaking.NewNcn(&cfg, base, decodeAddr(*admin))
	return printJSON(ncn)
}

func runOperatorCreate(args []string) int {
	fs := cliconfig.NewFlagSet("operator-create")
	cliconfig.BindCommon(fs)
	admin := fs.String("admin", "", "seed string the admin address is derived from")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	cfg := restaking.DefaultConfig(decodeAddr(*admin))
	base := decodeAddr("operator-base:" + *admin)
	op := restaking.NewOperator(&cfg, base, decodeAddr(*admin))
	return printJSON(op)
}

func runOperatorSetFee(args []string) int {
	fs := cliconfig.NewFlagSet("operator-set-fee")
	cliconfig.BindCommon(fs)
	var currentSlot uint64
	var newFeeBps uint64
	admin := fs.String("admin", "", "seed string the admin address is derived from")
	signer := fs.String("signer", "", "seed string the signer address is derived from")
	fs.Uint64Var(&currentSlot, "current-slot", 0, "current slot")
	fs.Uint64Var(&newFeeBps, "new-fee-bps", 0, "requested operator fee in bps")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	op := restaking.Operator{Admin: decodeAddr(*admin)}
	if err := op.SetFee(currentSlot, uint16(newFeeBps), decodeAddr(*signer)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return printJSON(op)
}

// runOptInDemo exercises the full bilateral opt-in path (NCN<->Operator,
// NCN<->Vault, Operator<->Vault) against a LocalRuntime, modeling what a
// host-RPC-backed Accounts implementation would do in production.
func runOptInDemo(args []string) int {
	fs := cliconfig.NewFlagSet("opt-in-demo")
	cliconfig.BindCommon(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	rt := cliconfig.NewLocalRuntime()
	ctx := context.Background()

	admin := decodeAddr("admin")
	cfg := restaking.DefaultConfig(admin)
	ncn := restaking.NewNcn(&cfg, decodeAddr("ncn-base"), admin)
	op := restaking.NewOperator(&cfg, decodeAddr("operator-base"), admin)
	vault := decodeAddr("vault")

	svc := restaking.NewService(rt.Accounts)
	now := epoch.Slot(0)

	if _, err := svc.InitializeNcnOperatorState(ctx, &ncn, admin, op.Address(), now); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if _, err := svc.InitializeNcnVaultTicket(ctx, &ncn, admin, vault, now); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if _, err := svc.InitializeOperatorVaultTicket(ctx, &op, admin, vault, now); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return printJSON(map[string]any{"ncn": ncn, "operator": op})
}

func decodeAddr(seed string) addr.Address {
	return addr.Derive(addr.RestakingProgram, "cli-seed", seed)
}

func printJSON(v any) int {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
