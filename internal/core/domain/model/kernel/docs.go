// Package kernel provides core domain primitives for the trading system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package currently contains:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid,
//     used as the identity of order aggregates
//
// Kernel types carry no business rules of their own beyond construction
// validity; domain behavior lives in the model packages that use them.
package kernel
