package commands

import (
	"errors"
	"fmt"

	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to submit a new trading order.
// The order identifier is not part of the command: it is minted by the
// handler so every accepted submission gets a fresh unique id.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	symbol   string
	quantity float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new order.
// Validates that symbol is not empty and quantity is greater than zero.
func NewCreateOrderCommand(symbol string, quantity float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setSymbol(symbol),
		orderCommand.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Symbol returns the traded instrument identifier.
func (c CreateOrderCommand) Symbol() string {
	return c.symbol
}

// Quantity returns the ordered amount.
func (c CreateOrderCommand) Quantity() float64 {
	return c.quantity
}

func (c *CreateOrderCommand) setSymbol(symbol string) error {
	if symbol == "" {
		return errs.NewValueIsRequiredError("symbol")
	}

	c.symbol = symbol
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
