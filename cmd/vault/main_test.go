package main

import (
	"testing"

	"github.com/jito-foundation/restaking-sub002/internal/metrics"
)

func TestRun_Version(t *testing.T) {
	if code := run([]string{"version"}); code != 0 {
		t.Fatalf("run(version) = %d, want 0", code)
	}
}

func TestRun_NoArgs(t *testing.T) {
	if code := run(nil); code != 2 {
		t.Fatalf("run(nil) = %d, want 2", code)
	}
}

func TestRun_UnknownSubcommand(t *testing.T) {
	if code := run([]string{"bogus"}); code != 2 {
		t.Fatalf("run(bogus) = %d, want 2", code)
	}
}

func TestRun_Create(t *testing.T) {
	args := []string{"-admin", "alice", "-supported-mint", "usdc", "-deposit-capacity", "1000000"}
	if code := run(append([]string{"create"}, args...)); code != 0 {
		t.Fatalf("run(create) = %d, want 0", code)
	}
}

func TestRun_Mint(t *testing.T) {
	before := metrics.VaultMints.Value()
	args := []string{"-depositor", "alice", "-amount-in", "1000", "-min-amount-out", "1", "-slot", "1"}
	if code := run(append([]string{"mint"}, args...)); code != 0 {
		t.Fatalf("run(mint) = %d, want 0", code)
	}
	if after := metrics.VaultMints.Value(); after != before+1 {
		t.Fatalf("VaultMints = %d, want %d", after, before+1)
	}
}

func TestRun_EnqueueWithdrawal(t *testing.T) {
	args := []string{"-staker", "bob", "-vrt-amount", "500", "-slot", "1"}
	if code := run(append([]string{"enqueue-withdrawal"}, args...)); code != 0 {
		t.Fatalf("run(enqueue-withdrawal) = %d, want 0", code)
	}
}

func TestRun_SetFee(t *testing.T) {
	args := []string{"-kind", "deposit", "-new-fee-bps", "50", "-current-slot", "9000"}
	if code := run(append([]string{"set-fee"}, args...)); code != 0 {
		t.Fatalf("run(set-fee) = %d, want 0", code)
	}
}

func TestRun_SetFeeBadKind(t *testing.T) {
	args := []string{"-kind", "nope"}
	if code := run(append([]string{"set-fee"}, args...)); code != 2 {
		t.Fatalf("run(set-fee bad kind) = %d, want 2", code)
	}
}
