package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jito-foundation/restaking-sub002/cmd/internal/cliconfig"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
	ccclog "github.com/jito-foundation/restaking-sub002/internal/log"
	"github.com/jito-foundation/restaking-sub002/internal/metrics"
	"github.com/jito-foundation/restaking-sub002/internal/vault"
)

func TestRun_Version(t *testing.T) {
	if code := run([]string{"-version"}); code != 0 {
		t.Fatalf("run(-version) = %d, want 0", code)
	}
}

func TestRun_BadFlag(t *testing.T) {
	if code := run([]string{"-bogus-flag"}); code != 2 {
		t.Fatalf("run(-bogus-flag) = %d, want 2", code)
	}
}

func TestSweepOnce_CranksVaultAndRecordsMetrics(t *testing.T) {
	rt := cliconfig.NewLocalRuntime()
	l := epoch.Length(vault.DefaultConfig().EpochLength)
	logger := ccclog.New(slog.LevelError).Module("cranker-test")

	before := metrics.CrankerSweeps.Value()
	sweepOnce(context.Background(), rt, l, 3, logger)
	if after := metrics.CrankerSweeps.Value(); after != before+1 {
		t.Fatalf("CrankerSweeps = %d, want %d", after, before+1)
	}
	if metrics.CrankerSweepDurationMs.Count() < 1 {
		t.Fatal("expected at least one sweep duration observation")
	}
}
