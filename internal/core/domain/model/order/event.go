package order

import "trading/internal/core/domain/model/kernel"

// StatusEvent is the notification emitted after a status change has been
// persisted. Every persisted transition produces exactly one event; delivery
// to observers is best-effort while they stay connected.
type StatusEvent struct {
	OrderID kernel.UUID
	Status  Status
}

// NewStatusEvent builds the event for a persisted transition of the given order.
func NewStatusEvent(orderID kernel.UUID, status Status) StatusEvent {
	return StatusEvent{OrderID: orderID, Status: status}
}
