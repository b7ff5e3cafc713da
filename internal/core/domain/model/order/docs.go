// Package order provides domain entities and business logic for order
// management in the trading system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing order identity, properties, and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//   - StatusEvent: the notification emitted for every persisted transition
//
// Key business rules:
//   - Orders must have a valid unique identifier, a non-empty symbol, and a
//     positive quantity
//   - Every order starts in the pending status
//   - The only valid transitions are pending -> executed and pending -> canceled;
//     both targets are terminal
//   - The Status state machine is the single authority consulted before any
//     status write, in memory or in the store
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
