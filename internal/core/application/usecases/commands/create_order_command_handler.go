package commands

import (
	"context"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order submission.
// It persists a new pending order, broadcasts the pending event, and hands
// the order to the detached execution scheduler. The caller gets the created
// order back immediately and never waits on the execution delay.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	scheduler  ports.ExecutionScheduler
}

// NewCreateOrderCommandHandler creates a handler for order submission.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	scheduler ports.ExecutionScheduler,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		scheduler:  scheduler,
	}
}

// Handle processes the order submission command.
// Mints a fresh identifier, persists the order in pending status, and only
// after the transaction commits publishes the pending event and schedules
// the background execution task.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), cmd.Symbol(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(order.NewStatusEvent(aggregate.ID(), aggregate.Status()))
	h.scheduler.Schedule(aggregate.ID())

	return aggregate, nil
}
