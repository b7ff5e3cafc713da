// Package jobs provides background tasks for the trading system.
//
// Two kinds of task live here:
//
// 1. ExecutionScheduler - a detached per-order task that waits out a random
// delay and then tries to execute the order
// 2. PendingRecoveryJob - a cron job (github.com/robfig/cron/v3) that runs
// every second and re-schedules execution for orders left pending, which
// happens when a process restart drops in-memory tasks
//
// # Usage
//
// The recovery job is managed through JobManager:
//
//	scheduler := jobs.NewExecutionScheduler(executeHandler, delayMin, delayMax, logger)
//	jobManager := jobs.NewJobManager(uowFactory, scheduler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - An execution task that loses the race to a cancellation is not an error
// and produces no log entry
// - Infrastructure failures inside a task are logged and the task ends; the
// recovery job will retry the order on its next scan
package jobs
