package jobs

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/domain/model/kernel"
)

const (
	// DefaultExecutionDelayMin is the shortest simulated fill time.
	DefaultExecutionDelayMin = 500 * time.Millisecond
	// DefaultExecutionDelayMax is the longest simulated fill time.
	DefaultExecutionDelayMax = 2 * time.Second
)

// ExecutionScheduler runs the detached execution task for submitted orders.
// Each scheduled order gets its own goroutine that sleeps a random delay and
// then attempts the pending-to-executed transition. The attempt can lose to
// a concurrent cancellation, in which case the task ends without effect.
//
// Scheduling the same order twice while its task is still in flight is a
// no-op, so the recovery job cannot pile duplicate tasks onto one order.
// Duplicate tasks would be harmless anyway since the transition itself is a
// compare-and-set, but they would waste goroutines.
type ExecutionScheduler struct {
	handler  commands.ExecuteOrderCommandHandler
	delayMin time.Duration
	delayMax time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	inFlight map[kernel.UUID]struct{}
}

// NewExecutionScheduler creates a scheduler with the given delay bounds.
// Non-positive or inverted bounds fall back to the defaults.
func NewExecutionScheduler(
	handler commands.ExecuteOrderCommandHandler,
	delayMin, delayMax time.Duration,
	logger *slog.Logger,
) *ExecutionScheduler {
	if delayMin <= 0 || delayMax < delayMin {
		delayMin = DefaultExecutionDelayMin
		delayMax = DefaultExecutionDelayMax
	}

	return &ExecutionScheduler{
		handler:  handler,
		delayMin: delayMin,
		delayMax: delayMax,
		logger:   logger.With("component", "execution_scheduler"),
		inFlight: make(map[kernel.UUID]struct{}),
	}
}

// Schedule starts the execution task for the identified order and returns
// immediately. The caller never observes the task's outcome directly; a
// successful execution announces itself through the event broadcast.
func (s *ExecutionScheduler) Schedule(id kernel.UUID) {
	s.mu.Lock()
	if _, running := s.inFlight[id]; running {
		s.mu.Unlock()
		return
	}
	s.inFlight[id] = struct{}{}
	s.mu.Unlock()

	go s.run(id)
}

func (s *ExecutionScheduler) run(id kernel.UUID) {
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, id)
		s.mu.Unlock()
	}()

	time.Sleep(s.delay())

	ctx := context.Background()

	cmd, err := commands.NewExecuteOrderCommand(id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Execution task got invalid order id", "orderId", id, "error", err)
		return
	}

	if err := s.handler.Handle(ctx, cmd); err != nil {
		s.logger.ErrorContext(ctx, "Execution task failed", "orderId", id, "error", err)
	}
}

func (s *ExecutionScheduler) delay() time.Duration {
	if s.delayMax == s.delayMin {
		return s.delayMin
	}
	return s.delayMin + rand.N(s.delayMax-s.delayMin) //nolint:gosec // it's ok
}

// InFlight reports how many execution tasks are currently running or waiting
// out their delay.
func (s *ExecutionScheduler) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inFlight)
}
