package commands

import (
	"context"

	"trading/internal/core/domain/model/order"
	"trading/internal/core/ports"
	"trading/internal/pkg/errs"
)

// CancelOrderCommandHandler handles user-initiated cancellation of an order.
//
// Cancellation races the detached execution task for the same order. The
// handler never does a bare read-then-write: the decisive step is the
// repository's compare-and-set keyed on the pending status, so of the two
// competing writers exactly one ever lands a terminal transition. When the
// handler loses that race it re-reads the order and reports the now-current
// status truthfully instead of pretending the cancellation succeeded.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Fails with errs.ObjectNotFoundError for an unknown order and with
// errs.InvalidStateError (carrying the current status) for a non-pending
// one. On a successful compare-and-set, exactly one canceled event is
// published after the transaction commits.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Fail fast on an already-terminal order; the authoritative check is
	// still the compare-and-set below.
	if _, err = aggregate.Status().Cancel(); err != nil {
		return err
	}

	applied, err := repo.UpdateStatus(ctx, cmd.OrderID(), order.Pending, order.Canceled)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !applied {
		return h.lostRaceError(ctx, cmd)
	}

	h.publisher.Publish(order.NewStatusEvent(cmd.OrderID(), order.Canceled))
	return nil
}

// lostRaceError re-reads the order after a failed compare-and-set and builds
// the invalid-state error from the status the winning writer left behind.
func (h *CancelOrderCommandHandler) lostRaceError(ctx context.Context, cmd CancelOrderCommand) error {
	current, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	_, stateErr := current.Status().Cancel()
	if stateErr == nil {
		return errs.NewInvalidStateError("order is no longer pending", current.Status().String())
	}
	return stateErr
}
