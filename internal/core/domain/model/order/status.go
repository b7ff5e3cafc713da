package order

import (
	"fmt"

	"trading/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Executed
//	          │
//	          └──> Canceled
//
// Executed and Canceled are terminal: no transition ever leaves them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and the wire format.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order. Orders in this status
	// await either execution by the background task or cancellation.
	Pending

	// Executed indicates the background execution task completed the order.
	// This is a terminal state.
	Executed

	// Canceled indicates the order was canceled before execution.
	// This is a terminal state.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// The strings double as the wire and persistence format, so they are lowercase.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Executed: "executed",
		Canceled: "canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Executed: "executed",
		Canceled: "canceled",
	}
}

// StatusFromString parses the persistence/wire representation of a status.
// Returns an error for anything that is not exactly "pending", "executed"
// or "canceled".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Executed, Canceled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status ("pending", "executed",
// "canceled"), or "unknown" for invalid values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Executed || s == Canceled
}

// CanTransitionTo reports whether the edge from s to target exists in the
// lifecycle graph. This is the single authority consulted before any status
// write: the only valid edges are Pending->Executed and Pending->Canceled.
// Self-transitions and edges out of terminal states are invalid.
func (s Status) CanTransitionTo(target Status) bool {
	if s != Pending {
		return false
	}
	return target == Executed || target == Canceled
}

// Execute transitions the status to Executed.
//
// Valid transition: Pending -> Executed. Any other source status, including
// the terminal ones, yields an InvalidStateError carrying the current status.
func (s Status) Execute() (Status, error) {
	if !s.CanTransitionTo(Executed) {
		return Unknown, errs.NewInvalidStateError(
			fmt.Sprintf("only pending orders can be executed, current status: %s", s),
			s.String(),
		)
	}
	return Executed, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transition: Pending -> Canceled. Any other source status yields an
// InvalidStateError whose message names the current status, which is what
// callers of the cancel operation ultimately see.
func (s Status) Cancel() (Status, error) {
	if !s.CanTransitionTo(Canceled) {
		return Unknown, errs.NewInvalidStateError(
			fmt.Sprintf("only pending orders can be canceled, current status: %s", s),
			s.String(),
		)
	}
	return Canceled, nil
}
