package jobs

import (
	"context"
	"log/slog"

	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PendingRecoveryJob re-schedules execution tasks for orders stuck in
// pending status. Execution tasks live only in process memory, so a restart
// loses every task that had not fired yet; this job scans the store each
// second and hands any pending order back to the scheduler. The scheduler's
// in-flight dedup keeps the scan from doubling up tasks that are merely
// still waiting out their delay.
type PendingRecoveryJob struct {
	uowFactory commands.OrderUoWFactory
	scheduler  ports.ExecutionScheduler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingRecoveryJob creates a job that re-schedules pending orders.
func NewPendingRecoveryJob(
	uowFactory commands.OrderUoWFactory,
	scheduler ports.ExecutionScheduler,
	logger *slog.Logger,
) *PendingRecoveryJob {
	return &PendingRecoveryJob{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pending_recovery_job"),
	}
}

// Start begins the recovery job to run every second.
func (j *PendingRecoveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		pending, err := j.uowFactory.Create().OrderRepository().GetAllInPendingStatus(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order scan failed", "error", err)
			return
		}

		for _, aggregate := range pending {
			j.scheduler.Schedule(aggregate.ID())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending recovery job started (running every second)")
	return nil
}

// Stop stops the recovery job.
func (j *PendingRecoveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending recovery job stopped")
}
