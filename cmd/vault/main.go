// Command vault is the CLI driver for the Vault program: deposits,
// withdrawals, fee administration, and the multi-transaction epoch update
// that the cranker daemon otherwise drives automatically.
//
// Usage:
//
//	vault <subcommand> [flags]
//
// Subcommands:
//
//	create                   print a freshly derived Vault account
//	mint                     deposit supported-mint tokens for VRT
//	enqueue-withdrawal       enqueue a VRT withdrawal ticket
//	set-fee                  change one of the three vault fee rates
//	opt-in-demo              run the Vault<->Ncn/Operator/Slasher opt-in walkthrough
//	version                  print version and exit
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jito-foundation/restaking-sub002/cmd/internal/cliconfig"
	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
	"github.com/jito-foundation/restaking-sub002/internal/metrics"
	"github.com/jito-foundation/restaking-sub002/internal/vault"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: vault <subcommand> [flags]")
		return 2
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "version":
		fmt.Printf("vault %s (commit %s)\n", version, commit)
		return 0
	case "create":
		return runCreate(rest)
	case "mint":
		return runMint(rest)
	case "enqueue-withdrawal":
		return runEnqueueWithdrawal(rest)
	case "set-fee":
		return runSetFee(rest)
	case "opt-in-demo":
		return runOptInDemo(rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", sub)
		return 2
	}
}

func runCreate(args []string) int {
	fs := cliconfig.NewFlagSet("create")
	cliconfig.BindCommon(fs)
	admin := fs.String("admin", "", "hex-seed for the admin address")
	supportedMint := fs.String("supported-mint", "", "hex-seed for the supported mint")
	var capacity uint64
	fs.Uint64Var(&capacity, "deposit-capacity", 0, "deposit capacity (0 = unbounded)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	cfg := vault.DefaultConfig()
	base := seedAddr("vault-base:" + *admin)
	vrtMint := seedAddr("vrt-mint:" + *admin)
	v := vault.NewVault(&cfg, base, vrtMint, seedAddr(*supportedMint), seedAddr(*admin), seedAddr("fee-wallet:"+*admin), capacity)
	return printJSON(v)
}

func runMint(args []string) int {
	fs := cliconfig.NewFlagSet("mint")
	cliconfig.BindCommon(fs)
	var amountIn, minAmountOut, slot uint64
	depositor := fs.String("depositor", "", "hex-seed for the depositor")
	fs.Uint64Var(&amountIn, "amount-in", 0, "supported-mint amount to deposit")
	fs.Uint64Var(&minAmountOut, "min-amount-out", 0, "minimum acceptable VRT out")
	fs.Uint64Var(&slot, "slot", 0, "current slot")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	rt := cliconfig.NewLocalRuntime()
	ctx := context.Background()
	l := epoch.Length(vault.DefaultConfig().EpochLength)

	cfg := vault.DefaultConfig()
	v := vault.NewVault(&cfg, seedAddr("vault-base"), seedAddr("vrt-mint"), seedAddr("supported-mint"), seedAddr("admin"), seedAddr("fee-wallet"), 0)

	rt.MemLedger.Seed(v.SupportedMint, seedAddr(*depositor), amountIn)

	res, err := vault.Mint(ctx, rt.Ledger, &v, epoch.Slot(slot), l, v.VrtMint, seedAddr(*depositor), amountIn, minAmountOut, seedAddr("admin"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	metrics.VaultMints.Inc()
	return printJSON(map[string]any{"result": res, "vault": v})
}

func runEnqueueWithdrawal(args []string) int {
	fs := cliconfig.NewFlagSet("enqueue-withdrawal")
	cliconfig.BindCommon(fs)
	var vrtAmount, slot uint64
	staker := fs.String("staker", "", "hex-seed for the staker")
	fs.Uint64Var(&vrtAmount, "vrt-amount", 0, "VRT amount to enqueue for withdrawal")
	fs.Uint64Var(&slot, "slot", 0, "current slot")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	rt := cliconfig.NewLocalRuntime()
	ctx := context.Background()
	l := epoch.Length(vault.DefaultConfig().EpochLength)

	cfg := vault.DefaultConfig()
	v := vault.NewVault(&cfg, seedAddr("vault-base"), seedAddr("vrt-mint"), seedAddr("supported-mint"), seedAddr("admin"), seedAddr("fee-wallet"), 0)
	v.VrtSupply = vrtAmount
	rt.MemLedger.Seed(v.VrtMint, seedAddr(*staker), vrtAmount)

	ticket, err := vault.EnqueueWithdrawal(ctx, rt.Ledger, &v, epoch.Slot(slot), l, seedAddr(*staker), seedAddr("ticket-base"), vrtAmount, seedAddr("admin"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	metrics.VaultWithdrawalsEnqueued.Inc()
	return printJSON(map[string]any{"ticket": ticket, "vault": v})
}

func runSetFee(args []string) int {
	fs := cliconfig.NewFlagSet("set-fee")
	cliconfig.BindCommon(fs)
	kind := fs.String("kind", "deposit", "deposit|withdrawal|reward")
	var newFeeBps, currentSlot uint64
	fs.Uint64Var(&newFeeBps, "new-fee-bps", 0, "requested fee in bps")
	fs.Uint64Var(&currentSlot, "current-slot", 0, "current slot")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	var feeKind vault.FeeKind
	switch *kind {
	case "deposit":
		feeKind = vault.DepositFee
	case "withdrawal":
		feeKind = vault.WithdrawalFee
	case "reward":
		feeKind = vault.RewardFee
	default:
		fmt.Fprintf(os.Stderr, "error: unknown fee kind %q\n", *kind)
		return 2
	}

	cfg := vault.DefaultConfig()
	v := vault.NewVault(&cfg, seedAddr("vault-base"), seedAddr("vrt-mint"), seedAddr("supported-mint"), seedAddr("admin"), seedAddr("fee-wallet"), 0)

	if err := v.SetFee(cfg, currentSlot, feeKind, uint16(newFeeBps), v.FeeAdmin); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return printJSON(v)
}

// runOptInDemo exercises the Vault's side of the bilateral opt-in path
// (Vault<->Ncn, Vault<->Operator, Vault<->Ncn-Slasher) against a
// LocalRuntime, mirroring restaking's opt-in-demo subcommand on the
// Restaking program's side of the same relationships.
func runOptInDemo(args []string) int {
	fs := cliconfig.NewFlagSet("opt-in-demo")
	cliconfig.BindCommon(fs)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	rt := cliconfig.NewLocalRuntime()
	ctx := context.Background()

	admin := seedAddr("admin")
	cfg := vault.DefaultConfig()
	v := vault.NewVault(&cfg, seedAddr("vault-base"), seedAddr("vrt-mint"), seedAddr("supported-mint"), admin, seedAddr("fee-wallet"), 0)
	ncn := seedAddr("ncn")
	operator := seedAddr("operator")
	slasher := seedAddr("slasher")

	svc := vault.NewService(rt.Accounts)
	now := epoch.Slot(0)

	if _, err := svc.InitializeVaultNcnTicket(ctx, &v, admin, ncn, now); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if _, err := svc.InitializeVaultOperatorDelegation(ctx, &v, admin, operator, now); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if _, err := svc.InitializeVaultNcnSlasherTicket(ctx, &v, admin, ncn, slasher, 0, now); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return printJSON(v)
}

func seedAddr(seed string) addr.Address {
	return addr.Derive(addr.VaultProgram, "cli-seed", seed)
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
