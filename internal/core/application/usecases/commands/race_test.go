package commands_test

import (
	"context"
	"sync"
	"testing"

	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/ports"
	"trading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOrderRepository is a mutex-guarded in-memory store used to exercise
// the cancel/execute race without a database. UpdateStatus performs the
// compare-and-set under the lock, so it gives the same exactly-one-winner
// guarantee as the conditional UPDATE in the real repository.
type memoryOrderRepository struct {
	mu     sync.Mutex
	orders map[kernel.UUID]*order.Order
}

func newMemoryOrderRepository() *memoryOrderRepository {
	return &memoryOrderRepository{orders: make(map[kernel.UUID]*order.Order)}
}

func (r *memoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[aggregate.ID()]; ok {
		return errs.NewObjectAlreadyExistsError("orderId", aggregate.ID())
	}

	r.orders[aggregate.ID()] = aggregate
	return nil
}

func (r *memoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}

	return order.RestoreOrder(aggregate.ID(), aggregate.Symbol(), aggregate.Quantity(), aggregate.Status())
}

func (r *memoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*order.Order, 0, len(r.orders))
	for _, aggregate := range r.orders {
		all = append(all, aggregate)
	}
	return all, nil
}

func (r *memoryOrderRepository) GetAllInPendingStatus(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pending []*order.Order
	for _, aggregate := range r.orders {
		if aggregate.Status() == order.Pending {
			pending = append(pending, aggregate)
		}
	}
	return pending, nil
}

func (r *memoryOrderRepository) UpdateStatus(
	_ context.Context, id kernel.UUID, expected, next order.Status,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, ok := r.orders[id]
	if !ok {
		return false, errs.NewObjectNotFoundError("orderId", id)
	}

	if aggregate.Status() != expected {
		return false, nil
	}

	updated, err := order.RestoreOrder(aggregate.ID(), aggregate.Symbol(), aggregate.Quantity(), next)
	if err != nil {
		return false, err
	}

	r.orders[id] = updated
	return true, nil
}

// memoryUoW shares a single repository across all handlers; transaction
// boundaries are no-ops because every repository operation is atomic.
type memoryUoW struct{ repo *memoryOrderRepository }

func (u *memoryUoW) Begin(_ context.Context) error          { return nil }
func (u *memoryUoW) Commit(_ context.Context) error         { return nil }
func (u *memoryUoW) Rollback(_ context.Context) error       { return nil }
func (u *memoryUoW) OrderRepository() ports.OrderRepository { return u.repo }

type memoryUoWFactory struct{ repo *memoryOrderRepository }

func (f *memoryUoWFactory) Create() commands.OrderUoW { return &memoryUoW{repo: f.repo} }

// recordingPublisher accumulates every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []order.StatusEvent
}

func (p *recordingPublisher) Publish(event order.StatusEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []order.StatusEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]order.StatusEvent(nil), p.events...)
}

// TestCancelExecuteRace_ExactlyOneTerminalTransition races many concurrent
// cancellations against one execution for the same order. Regardless of
// interleaving, exactly one writer must win, the final status must match the
// winner, and exactly one terminal event must be published.
func TestCancelExecuteRace_ExactlyOneTerminalTransition(t *testing.T) {
	const cancellers = 10
	const rounds = 50

	for range rounds {
		repo := newMemoryOrderRepository()
		factory := &memoryUoWFactory{repo: repo}
		publisher := &recordingPublisher{}

		id := kernel.NewUUID()
		aggregate, err := order.NewOrder(id, "AAPL", 10)
		require.NoError(t, err)
		require.NoError(t, repo.Add(t.Context(), aggregate))

		cancelHandler := commands.NewCancelOrderCommandHandler(factory, publisher)
		executeHandler := commands.NewExecuteOrderCommandHandler(factory, publisher)

		var wg sync.WaitGroup
		var cancelWins, cancelLosses int64
		var countMu sync.Mutex

		for range cancellers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cmd, cmdErr := commands.NewCancelOrderCommand(id)
				if cmdErr != nil {
					return
				}
				handleErr := cancelHandler.Handle(context.Background(), cmd)
				countMu.Lock()
				defer countMu.Unlock()
				if handleErr == nil {
					cancelWins++
				} else {
					cancelLosses++
				}
			}()
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewExecuteOrderCommand(id)
			if cmdErr != nil {
				return
			}
			_ = executeHandler.Handle(context.Background(), cmd)
		}()

		wg.Wait()

		final, err := repo.Get(t.Context(), id)
		require.NoError(t, err)
		require.True(t, final.Status().IsTerminal())

		events := publisher.Events()
		require.Len(t, events, 1, "exactly one terminal event per order")
		assert.Equal(t, final.Status(), events[0].Status)
		assert.True(t, events[0].OrderID.IsEqual(id))

		// At most one cancellation can have claimed victory, and it did so
		// iff the order ended up canceled.
		require.LessOrEqual(t, cancelWins, int64(1))
		if final.Status() == order.Canceled {
			assert.EqualValues(t, 1, cancelWins)
		} else {
			assert.EqualValues(t, 0, cancelWins)
			assert.EqualValues(t, cancellers, cancelLosses)
		}
	}
}
