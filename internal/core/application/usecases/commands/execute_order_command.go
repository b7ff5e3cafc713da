package commands

import (
	"errors"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/pkg/guard"
)

var (
	ErrExecuteOrderCommandIsNotConstructed = errors.New(
		"ExecuteOrderCommand must be created via NewExecuteOrderCommand constructor",
	)
)

// ExecuteOrderCommand represents a request to mark a pending order as executed.
// It is issued by the execution scheduler, not by users.
type ExecuteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewExecuteOrderCommand creates a command to execute the identified order.
func NewExecuteOrderCommand(orderID kernel.UUID) (ExecuteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ExecuteOrderCommand{}, err
	}

	return ExecuteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExecuteOrderCommand) Validate() error {
	return c.guard.Validate(ErrExecuteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to execute.
func (c ExecuteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
