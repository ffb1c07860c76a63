package order

import (
	"fmt"
	"strings"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a procurement order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Approved ──┬──> InProcess ──> Shipped ──> Received
//	          │               │
//	          └───────────────┴──> Cancelled
//
// Received and Cancelled are terminal states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status allow line edits, cancellation, and deletion.
	Pending

	// Approved indicates the order has been reviewed and approved.
	// Lines can no longer be modified.
	Approved

	// InProcess indicates the supplier is preparing the order.
	InProcess

	// Shipped indicates the supplier has dispatched the order.
	Shipped

	// Received indicates the order has arrived at the warehouse.
	// This is a terminal state.
	Received

	// Cancelled indicates the order was cancelled before processing
	// completed. This is a terminal state.
	Cancelled
)

// allowedTransitions is the exhaustive transition table of the state machine.
// Any (from, to) pair not present here is illegal.
var allowedTransitions = map[Status][]Status{
	Pending:   {Approved, Cancelled},
	Approved:  {InProcess, Cancelled},
	InProcess: {Shipped},
	Shipped:   {Received},
	Received:  {},
	Cancelled: {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Approved:  "Approved",
		InProcess: "InProcess",
		Shipped:   "Shipped",
		Received:  "Received",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Approved:  "Approved",
		InProcess: "InProcess",
		Shipped:   "Shipped",
		Received:  "Received",
		Cancelled: "Cancelled",
	}
}

// StatusNames returns the names of all valid statuses in lifecycle order.
// Used to build error messages listing the allowed values.
func StatusNames() []string {
	return []string{
		Pending.String(),
		Approved.String(),
		InProcess.String(),
		Shipped.String(),
		Received.String(),
		Cancelled.String(),
	}
}

// StatusFromName parses a status token case-insensitively.
// Returns a BusinessRuleError listing the valid names when the token does not
// match any of the six statuses.
func StatusFromName(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(str, name) {
			return status, nil
		}
	}

	return Unknown, errs.NewBusinessRuleError(
		fmt.Sprintf("status '%s' is not valid. Allowed statuses: %s",
			name, strings.Join(StatusNames(), ", ")),
		errs.CodeInvalidStatus,
	)
}

// Validate checks if the Status value is one of the six named states.
// Unknown (0) and any other values are invalid. Used to reject bad values
// coming from persistence before an aggregate is reconstructed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the transition table permits moving from
// the current status to the given one.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	if err := s.Validate(); err != nil {
		return false
	}
	return len(allowedTransitions[s]) == 0
}

// TransitionTo returns the new status if the transition is permitted.
//
// Returns:
//   - (to, nil) on a valid transition
//   - (0, *errs.InvalidStateTransitionError) otherwise
//
// This method is used by Order.ChangeStatus() to enforce state transitions.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(to) {
		return 0, errs.NewInvalidStateTransitionError(s.String(), to.String())
	}

	return to, nil
}
