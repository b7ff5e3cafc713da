// Package pubsub implements the subscriber registry and broadcaster for order
// status events. The registry is an internally-synchronized shared set:
// subscribe, unsubscribe, and publish may all be called concurrently from
// independent goroutines.
//
// Delivery is best-effort while a subscriber stays connected. A subscriber
// that cannot keep up (its buffer is full) is pruned on the spot rather than
// retried, and a failed delivery to one subscriber never delays or aborts
// delivery to the rest.
package pubsub

import (
	"log/slog"
	"sync"

	"trading/internal/core/domain/model/order"
)

// defaultBufferSize is the per-subscription event buffer. A subscriber whose
// transport cannot drain this many events before the next publish is treated
// as dead and pruned.
const defaultBufferSize = 32

// Subscription is the handle returned by Subscribe. The owner receives events
// from Events() and must eventually return the handle via Unsubscribe. The
// events channel is closed on unsubscription (including pruning), which is
// how the owner learns the subscription ended.
type Subscription struct {
	events chan order.StatusEvent
	closed bool // guarded by the broadcaster's mutex
}

// Events returns the receive side of the subscription.
func (s *Subscription) Events() <-chan order.StatusEvent {
	return s.events
}

// Broadcaster tracks live subscriptions and fans status events out to them.
// All state is guarded by a single mutex; sends are non-blocking, so holding
// the lock across a publish cannot stall on a slow consumer.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[*Subscription]struct{}
	bufferSize  int
	logger      *slog.Logger
}

// NewBroadcaster creates an empty registry.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[*Subscription]struct{}),
		bufferSize:  defaultBufferSize,
		logger:      logger.With("component", "broadcaster"),
	}
}

// Subscribe registers a new observer and returns its handle.
func (b *Broadcaster) Subscribe() *Subscription {
	sub := &Subscription{
		events: make(chan order.StatusEvent, b.bufferSize),
	}

	b.mu.Lock()
	b.subscribers[sub] = struct{}{}
	total := len(b.subscribers)
	b.mu.Unlock()

	b.logger.Debug("subscriber connected", "total", total)
	return sub
}

// Unsubscribe removes a subscription and closes its events channel.
// It is idempotent: unsubscribing twice, or unsubscribing a handle that was
// already pruned, is a no-op.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	b.remove(sub)
	total := len(b.subscribers)
	b.mu.Unlock()

	b.logger.Debug("subscriber disconnected", "total", total)
}

// Publish delivers the event to every subscription registered at call time.
// Subscriptions joining mid-publish may or may not receive this event.
// A subscription whose buffer is full is pruned; the remaining subscribers
// are unaffected. Publish never blocks on a consumer.
func (b *Broadcaster) Publish(event order.StatusEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subscribers {
		select {
		case sub.events <- event:
		default:
			// Consumer is not draining; treat it as gone.
			b.remove(sub)
			b.logger.Warn("pruned unresponsive subscriber",
				"order_id", event.OrderID.String(), "remaining", len(b.subscribers))
		}
	}
}

// Close unsubscribes everything. Used on shutdown so websocket write loops
// observe closed channels and exit.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subscribers {
		b.remove(sub)
	}
}

// Len reports the number of live subscriptions.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

// remove deletes and closes a subscription. Caller must hold b.mu.
func (b *Broadcaster) remove(sub *Subscription) {
	if sub.closed {
		return
	}
	sub.closed = true
	delete(b.subscribers, sub)
	close(sub.events)
}
