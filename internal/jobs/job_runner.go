package jobs

import (
	"context"
	"time"

	"greencoins-backend/internal/config"
	"greencoins-backend/internal/logger"
	"greencoins-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	recon  service.ReconciliationService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(recon service.ReconciliationService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		recon:  recon,
		config: cfg,
	}
}

// Config returns the loaded application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// SyncCoinTransactions scans every account for approved recycling
// activities that never received their coin credit and repairs them.
func (jr *JobRunner) SyncCoinTransactions() {
	jr.runWithRecovery("sync-coin-transactions", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		report, err := jr.recon.Reconcile(ctx, nil)
		if err != nil {
			logger.Error("Transaction sync failed", "error", err)
			return
		}
		if report.FixedCount == 0 && report.ErrorCount == 0 {
			logger.Info("No missing transactions found")
			return
		}
		logger.Info("Transaction sync finished",
			"fixed_count", report.FixedCount,
			"error_count", report.ErrorCount,
		)
		for _, e := range report.Errors {
			logger.Warn("Activity could not be repaired", "activity_id", e.ActivityID, "reason", e.Message)
		}
	})
}
