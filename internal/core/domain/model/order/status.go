package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a closed
// state machine: the single source of truth for legal transitions is the
// table returned by transitionTable, not scattered conditionals.
//
// State transitions:
//
//	PENDING ──> PLACED ──> ACCEPTED ──> PREPARING ──> READY ──> PICKED_UP ──> COMPLETED
//	   │           │           │                        │
//	   │           ├──> REJECTED                        └──────────────────> COMPLETED
//	   └───────────┴──> CANCELLED
//
// COMPLETED, CANCELLED and REJECTED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order exists but payment (or
	// explicit placement) has not happened yet.
	Pending

	// Placed indicates the order has been submitted and awaits the
	// restaurant's decision.
	Placed

	// Accepted indicates the restaurant has taken the order.
	Accepted

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates preparation finished and the order awaits pickup.
	Ready

	// PickedUp indicates a courier has collected the order and is delivering it.
	PickedUp

	// Completed indicates the order was delivered. Terminal.
	Completed

	// Cancelled indicates the order was cancelled before completion. Terminal.
	Cancelled

	// Rejected indicates the restaurant (or the system, on timeout) refused
	// the order. Terminal.
	Rejected
)

// getStatusStrings returns the wire/storage names of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Placed:    "PLACED",
		Accepted:  "ACCEPTED",
		Preparing: "PREPARING",
		Ready:     "READY",
		PickedUp:  "PICKED_UP",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
		Rejected:  "REJECTED",
	}
}

// statusAliases maps deprecated status names onto the canonical set.
// Kept for backward compatibility with older clients and stored data.
func statusAliases() map[string]Status {
	return map[string]Status{
		"NEW":              Pending,
		"COURIER_ASSIGNED": Ready,
		"ON_DELIVERY":      PickedUp,
		"DELIVERED":        Completed,
	}
}

// transitionTable is the closed set of legal order-state edges.
// A status absent from an entry's slice is not reachable from that entry.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Placed, Cancelled},
		Placed:    {Accepted, Rejected, Cancelled},
		Accepted:  {Preparing, Cancelled},
		Preparing: {Ready},
		Ready:     {PickedUp, Completed},
		PickedUp:  {Completed},
		Completed: {},
		Cancelled: {},
		Rejected:  {},
	}
}

// AllStatuses returns every valid status, in lifecycle order.
// Useful for exhaustive checks over the transition table.
func AllStatuses() []Status {
	return []Status{Pending, Placed, Accepted, Preparing, Ready, PickedUp, Completed, Cancelled, Rejected}
}

// ParseStatus resolves a status name, accepting both canonical names and the
// deprecated aliases NEW, COURIER_ASSIGNED, ON_DELIVERY and DELIVERED.
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name && status != Unknown {
			return status, nil
		}
	}
	if status, ok := statusAliases()[name]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", name))
}

// Validate checks that the Status value is a member of the canonical set.
func (s Status) Validate() error {
	if _, ok := transitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the canonical name of the status, or "UNKNOWN" for
// out-of-range values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// AllowedNext returns the set of statuses reachable from s in one transition.
// The set is empty for terminal statuses.
func (s Status) AllowedNext() []Status {
	next := transitionTable()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether s has no outgoing edges.
func (s Status) IsTerminal() bool {
	return len(transitionTable()[s]) == 0 && s.Validate() == nil
}

// CanCancel reports whether CANCELLED is reachable from s in one transition.
func (s Status) CanCancel() bool {
	for _, next := range transitionTable()[s] {
		if next == Cancelled {
			return true
		}
	}
	return false
}

// ValidateTransition fails with an InvalidTransitionError unless the edge
// s -> to is present in the transition table. Self-transitions always fail.
// The error names both states and the allowed set for diagnosability.
func (s Status) ValidateTransition(to Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	allowed := transitionTable()[s]
	if s != to {
		for _, next := range allowed {
			if next == to {
				return nil
			}
		}
	}

	names := make([]string, len(allowed))
	for i, next := range allowed {
		names[i] = next.String()
	}
	return errs.NewInvalidTransitionError(s.String(), to.String(), names)
}
