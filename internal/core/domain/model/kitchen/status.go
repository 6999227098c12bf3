package kitchen

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// TicketStatus is the preparation sub-state of a kitchen ticket. It is
// causally derived from the bound order's status and never advances
// independently of it.
type TicketStatus int

const (
	// TicketUnknown represents an invalid or undefined ticket status.
	TicketUnknown TicketStatus = iota

	// TicketPending means the ticket is queued and no preparer has started.
	TicketPending

	// TicketPreparing means a preparer is working on the order.
	TicketPreparing

	// TicketReady means preparation is done and the order awaits pickup.
	TicketReady

	// TicketPickedUp means a courier collected the prepared order.
	TicketPickedUp

	// TicketCancelled means the bound order terminated before preparation finished.
	TicketCancelled
)

func getTicketStatusStrings() map[TicketStatus]string {
	return map[TicketStatus]string{
		TicketUnknown:   "UNKNOWN",
		TicketPending:   "PENDING",
		TicketPreparing: "PREPARING",
		TicketReady:     "READY",
		TicketPickedUp:  "PICKED_UP",
		TicketCancelled: "CANCELLED",
	}
}

// ParseTicketStatus converts a canonical status string back into a
// TicketStatus, as used when restoring tickets from persistence.
func ParseTicketStatus(s string) (TicketStatus, error) {
	for status, name := range getTicketStatusStrings() {
		if name == s && status != TicketUnknown {
			return status, nil
		}
	}
	return TicketUnknown, errs.NewValueIsInvalidErrorWithCause("ticket status",
		fmt.Errorf("%q is not a valid ticket status", s))
}

// Validate checks that the value is a member of the ticket status set.
func (s TicketStatus) Validate() error {
	if _, ok := getTicketStatusStrings()[s]; !ok || s == TicketUnknown {
		return errs.NewValueIsInvalidErrorWithCause("ticket status",
			fmt.Errorf("%d is not a valid ticket status", int(s)))
	}
	return nil
}

// String returns the canonical name of the status. Implements fmt.Stringer.
func (s TicketStatus) String() string {
	if str, ok := getTicketStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
