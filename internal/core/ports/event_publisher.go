package ports

import (
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
)

// OrderEventPublisher fans a status event out to every currently connected
// observer. Publish must never block the state-changing operation: delivery
// to a slow or dead observer is isolated and best-effort, and failed
// observers are pruned rather than retried.
type OrderEventPublisher interface {
	Publish(event order.StatusEvent)
}

// ExecutionScheduler hands an order to the detached background execution
// task. Schedule returns immediately; the task runs to completion of its
// delay on its own and has no observable result beyond a broadcast event.
type ExecutionScheduler interface {
	Schedule(id kernel.UUID)
}
