package order

import (
	"errors"
	"fmt"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a trading order in the system. It is the aggregate root that
// manages the order lifecycle from submission through execution or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, assigned at creation and immutable
//   - Symbol must be a non-empty instrument identifier
//   - Quantity must be positive (greater than 0)
//   - Status transitions follow the lifecycle graph enforced by Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; the durable
// representation is owned by the store, and an Order value never outlives the
// operation that loaded it.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// symbol identifies the traded instrument
	symbol string

	// quantity is the ordered amount (must be positive)
	quantity float64

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a brand-new order, ensuring all business invariants hold.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - symbol: instrument identifier (must be non-empty)
//   - quantity: ordered amount (must be greater than 0)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, symbol string, quantity float64) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setSymbol(symbol),
		order.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its stored
// status. Unlike NewOrder it accepts any valid status, since persisted orders
// may already be terminal.
func RestoreOrder(id kernel.UUID, symbol string, quantity float64, status Status) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order, err := NewOrder(id, symbol, quantity)
	if err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Symbol returns the traded instrument identifier.
func (o *Order) Symbol() string {
	return o.symbol
}

// Quantity returns the ordered amount.
func (o *Order) Quantity() float64 {
	return o.quantity
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Execute marks the order as executed.
//
// The order must be in Pending status; Executed is terminal with no further
// transitions. Note that this only mutates the in-memory aggregate: the
// race-safe persisted transition goes through the repository's conditional
// update, which consults the same Status state machine.
func (o *Order) Execute() error {
	newStatus, err := o.status.Execute()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as canceled.
//
// The order must be in Pending status; Canceled is terminal. As with Execute,
// the persisted transition is performed by the repository's conditional update.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setSymbol validates and sets the traded instrument identifier.
func (o *Order) setSymbol(symbol string) error {
	if symbol == "" {
		return errs.NewValueIsRequiredError("symbol")
	}
	o.symbol = symbol
	return nil
}

// setQuantity validates and sets the ordered amount.
// Quantity must be positive (greater than 0).
func (o *Order) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}
