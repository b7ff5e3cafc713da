package jobs

import (
	"fmt"
	"log/slog"

	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingRecoveryJob *PendingRecoveryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the unit of work factory and the execution scheduler as dependencies
// to wire up the recovery scan.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	scheduler ports.ExecutionScheduler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingRecoveryJob: NewPendingRecoveryJob(uowFactory, scheduler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingRecoveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending recovery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingRecoveryJob.Stop()
}
