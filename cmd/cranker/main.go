// Command cranker is the off-chain daemon that drives every vault's
// multi-transaction epoch update (spec §4.3, §7 "cranker policy"): for each
// vault not up to date this epoch, it issues Initialize, one Crank per
// delegated operator in index order, then Close, logging and moving on to
// the next vault on any error rather than aborting the whole sweep.
//
// Usage:
//
//	cranker [flags]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jito-foundation/restaking-sub002/cmd/internal/cliconfig"
	"github.com/jito-foundation/restaking-sub002/internal/addr"
	"github.com/jito-foundation/restaking-sub002/internal/delegation"
	"github.com/jito-foundation/restaking-sub002/internal/epoch"
	ccclog "github.com/jito-foundation/restaking-sub002/internal/log"
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

// run is the entry point, returning an exit code. It mirrors the
// teacher's node Config/run shutdown-signal loop in cmd/eth2030/main.go,
// substituting a fixed-interval sweep for the node's RPC server loop.
func run(args []string) int {
	fs := cliconfig.NewFlagSet("cranker")
	common := cliconfig.BindCommon(fs)
	var pollIntervalSeconds uint64
	var operatorCount uint64
	showVersion := fs.Bool("version", false, "print version and exit")
	metricsAddr := fs.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	fs.Uint64Var(&pollIntervalSeconds, "poll-interval-seconds", 30, "seconds between sweep cycles")
	fs.Uint64Var(&operatorCount, "operator-count", 0, "number of delegated operators to crank per vault")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if *showVersion {
		fmt.Printf("cranker %s (commit %s)\n", version, commit)
		return 0
	}

	logger := ccclog.New(slog.LevelInfo).Module("cranker")
	logger.Info("cranker starting",
		"rpc_url", common.RPCURL,
		"commitment", common.Commitment,
		"poll_interval_seconds", pollIntervalSeconds,
	)

	rt := cliconfig.NewLocalRuntime()
	l := epoch.Length(vault.DefaultConfig().EpochLength)

	if *metricsAddr != "" {
		exporter := metrics.NewPrometheusExporter(metrics.DefaultRegistry, metrics.DefaultPrometheusConfig())
		srv := &http.Server{Addr: *metricsAddr, Handler: exporter.Handler()}
		go func() {
			logger.Info("serving metrics", "addr", *metricsAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn("metrics server stopped", "err", err)
			}
		}()
		defer srv.Close()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(pollIntervalSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", "signal", sig.String())
			return 0
		case <-ticker.C:
			sweepOnce(context.Background(), rt, l, operatorCount, logger)
		}
	}
}

// sweepOnce drives the Initialize -> Crank*N -> Close sequence for one demo
// vault built from default configuration (the runtime holds no vault
// records to enumerate). An error is logged and ends the sweep; the next
// tick starts a fresh one (spec §7's log-and-continue cranker policy).
func sweepOnce(ctx context.Context, rt *cliconfig.LocalRuntime, l epoch.Length, operatorCount uint64, logger *ccclog.Logger) {
	_ = ctx

	timer := metrics.NewTimer(metrics.CrankerSweepDurationMs)
	defer timer.Stop()

	now := epoch.Slot(uint64(time.Now().Unix()))
	logger.Debug("sweep tick", "slot", uint64(now))

	// A production cranker enumerates vaults via the host RPC's
	// program-account scan (spec §13, external collaborator); this core
	// ships no such scan, so the demo sweep operates on a single vault
	// constructed from the runtime's defaults, to exercise the same
	// Initialize/Crank/Close call sequence the real sweep would use per
	// vault.
	cfg := vault.DefaultConfig()
	v := vault.NewVault(&cfg, seedAddr("vault-base"), seedAddr("vrt-mint"), seedAddr("supported-mint"), seedAddr("admin"), seedAddr("fee-wallet"), 0)
	v.OperatorCount = operatorCount

	if v.IsUpToDate(now, l) {
		logger.Debug("vault up to date, skipping", "vault", v.Address())
		return
	}

	if v.LastFullStateUpdateSlot > 0 {
		lastEpoch := l.At(epoch.Slot(v.LastFullStateUpdateSlot))
		if cur := l.At(now); cur > lastEpoch {
			metrics.CrankerEpochsBehind.Set(int64(cur - lastEpoch))
		}
	}

	tr, err := vault.InitializeVaultUpdateStateTracker(v, now, l, delegation.Greedy)
	if err != nil {
		logger.Warn("initialize failed", "vault", v.Address(), "err", err)
		metrics.CrankerSweepErrors.Inc()
		return
	}

	for i := uint64(0); i < operatorCount; i++ {
		opDeleg := vault.VaultOperatorDelegation{Index: i}
		if _, err := tr.Crank(opDeleg, logger); err != nil {
			logger.Warn("crank failed", "vault", v.Address(), "index", i, "err", err)
			metrics.CrankerSweepErrors.Inc()
			return
		}
	}

	if _, err := tr.Close(v, operatorCount, now, l, logger); err != nil {
		logger.Warn("close failed", "vault", v.Address(), "err", err)
		metrics.CrankerSweepErrors.Inc()
		return
	}
	metrics.CrankerSweeps.Inc()
	logger.Info("vault cranked", "vault", v.Address())
}

func seedAddr(seed string) addr.Address {
	return addr.Derive(addr.VaultProgram, "cli-seed", seed)
}
