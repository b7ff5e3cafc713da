package commands

import (
	"context"
	"errors"

	"trading/internal/core/domain/model/order"
	"trading/internal/core/ports"
	"trading/internal/pkg/errs"
)

// ExecuteOrderCommandHandler completes an order on behalf of the execution
// scheduler.
//
// It is the second of the two writers racing for an order's single terminal
// transition. Losing the race to a cancellation is an expected outcome, not
// a failure: the handler returns nil and publishes nothing, leaving the
// canceled event produced by the winner as the only notification observers
// ever see for that order.
type ExecuteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewExecuteOrderCommandHandler creates a handler for order execution.
func NewExecuteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ExecuteOrderCommandHandler {
	return ExecuteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the execution command. It publishes exactly one executed
// event when its compare-and-set lands, and nothing otherwise. An order that
// vanished or was canceled meanwhile is not an error.
func (h *ExecuteOrderCommandHandler) Handle(ctx context.Context, cmd ExecuteOrderCommand) error {
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

	applied, err := uow.OrderRepository().UpdateStatus(ctx, cmd.OrderID(), order.Pending, order.Executed)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !applied {
		return nil
	}

	h.publisher.Publish(order.NewStatusEvent(cmd.OrderID(), order.Executed))
	return nil
}
