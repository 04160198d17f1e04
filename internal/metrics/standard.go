package metrics

// Pre-defined metrics for the restaking/vault core and its cranker daemon.
// All metrics live in DefaultRegistry so they are globally accessible
// without passing a registry around, the same convention the teacher's
// own standard.go used for its chain/txpool/p2p metrics.

var (
	// ---- Cranker sweep metrics (spec §7, §9) ----

	// CrankerSweeps counts completed Initialize->Crank*N->Close cycles.
	CrankerSweeps = DefaultRegistry.Counter("cranker.sweeps_completed")
	// CrankerSweepErrors counts sweeps abandoned after an error on any
	// vault, per the cranker's log-and-continue policy.
	CrankerSweepErrors = DefaultRegistry.Counter("cranker.sweep_errors")
	// CrankerSweepDurationMs records wall-clock time per sweep.
	CrankerSweepDurationMs = DefaultRegistry.Histogram("cranker.sweep_duration_ms")
	// CrankerEpochsBehind is the gauge spec §9 calls for directly:
	// "implementations should surface a metric when epochs_elapsed > 2" at
	// Close.
	CrankerEpochsBehind = DefaultRegistry.Gauge("cranker.epochs_behind")

	// ---- Vault accounting metrics ----

	// VaultMints counts successful mints; cmd/vault's mint subcommand
	// increments it (vault.Mint itself does not).
	VaultMints = DefaultRegistry.Counter("vault.mints")
	// VaultWithdrawalsEnqueued counts enqueued withdrawals; cmd/vault's
	// enqueue-withdrawal subcommand increments it (vault.EnqueueWithdrawal
	// itself does not).
	VaultWithdrawalsEnqueued = DefaultRegistry.Counter("vault.withdrawals_enqueued")
	// VaultWithdrawalsBurned is registered for burned withdrawal tickets;
	// no code in this module increments it.
	VaultWithdrawalsBurned = DefaultRegistry.Counter("vault.withdrawals_burned")
	// VaultSlashesApplied is registered for applied slashes; no code in
	// this module increments it.
	VaultSlashesApplied = DefaultRegistry.Counter("vault.slashes_applied")
	// VaultRewardFeeVrt is registered for the reward_fee_vrt minted by
	// UpdateVaultBalance; no code in this module records into it.
	VaultRewardFeeVrt = DefaultRegistry.Histogram("vault.reward_fee_vrt")
)
