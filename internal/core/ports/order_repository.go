package ports

import (
	"context"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store exclusively owns the durable representation; callers never hold a
// copy beyond one operation and re-read before every mutation.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns an errs.ObjectAlreadyExistsError if the identifier is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order. No ordering is guaranteed by the
	// contract, though implementations may choose insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInPendingStatus retrieves all orders still awaiting execution or
	// cancellation. Used by the recovery job to re-schedule lost execution tasks.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// UpdateStatus atomically sets the status of the identified order to next
	// only if the stored status currently equals expected (compare-and-set).
	// It reports whether the update applied; a false result with nil error
	// means a concurrent writer already moved the order elsewhere and is
	// authoritative information, not a retryable failure. Returns an
	// errs.ObjectNotFoundError if the order does not exist.
	//
	// Implementations must make this linearizable per id: of any set of
	// concurrent callers racing on the same order, exactly one observes
	// applied=true.
	UpdateStatus(ctx context.Context, id kernel.UUID, expected, next order.Status) (bool, error)
}
