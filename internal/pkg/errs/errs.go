package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the fulfillment core taxonomy. Callers classify failures
// with errors.Is against these values; the concrete error types below carry the
// diagnostic details.
var (
	// ErrValueIsRequired indicates a required value was not provided.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates a provided value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrObjectNotFound indicates a referenced order, ticket or wallet is absent.
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidTransition indicates an order-state edge not present in the
	// transition table. Caller error, never retried.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrAlreadyAssigned indicates the courier claim race was lost: another
	// courier is already bound to the order. The caller should re-list
	// available orders rather than retry the same claim.
	ErrAlreadyAssigned = errors.New("order already assigned")

	// ErrInvalidState indicates an operation's precondition on a sub-entity
	// state was not met, e.g. starting preparation on a ticket twice.
	ErrInvalidState = errors.New("invalid state")

	// ErrLedgerInconsistency indicates the wallet's stored balance diverged
	// from its most recent ledger entry. Fatal: the enclosing transaction must
	// abort, never auto-correct.
	ErrLedgerInconsistency = errors.New("ledger inconsistency")
)

// sanitize collapses newlines so multi-line values cannot break log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a provided value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError is returned when a referenced aggregate does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError is returned when an order-status edge is not present
// in the transition table. The message names both states and the allowed set so
// a rejected transition can be diagnosed from the error alone.
type InvalidTransitionError struct {
	From    string
	To      string
	Allowed []string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the attempted edge.
func NewInvalidTransitionError(from, to string, allowed []string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Allowed: allowed}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s (allowed from %s: [%s])",
		ErrInvalidTransition, e.From, e.To, e.From, strings.Join(e.Allowed, ", ")))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyAssignedError is returned when a courier attempts to claim an order
// that another courier already holds.
type AlreadyAssignedError struct {
	OrderID   string
	CourierID string
}

// NewAlreadyAssignedError creates an AlreadyAssignedError for the losing claim.
func NewAlreadyAssignedError(orderID, courierID string) *AlreadyAssignedError {
	return &AlreadyAssignedError{OrderID: orderID, CourierID: courierID}
}

func (e *AlreadyAssignedError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s cannot be claimed by courier %s",
		ErrAlreadyAssigned, e.OrderID, e.CourierID))
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// InvalidStateError is returned when an operation's precondition on an
// entity's current state is not met.
type InvalidStateError struct {
	Subject string
	Current string
	Reason  string
}

// NewInvalidStateError creates an InvalidStateError describing the failed precondition.
func NewInvalidStateError(subject, current, reason string) *InvalidStateError {
	return &InvalidStateError{Subject: subject, Current: current, Reason: reason}
}

func (e *InvalidStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is %s, %s", ErrInvalidState, e.Subject, e.Current, e.Reason))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// LedgerInconsistencyError is returned when a wallet's stored balance does not
// equal the balanceAfter of its most recent ledger entry. It signals prior
// corruption: the posting transaction must abort.
type LedgerInconsistencyError struct {
	WalletID         string
	WalletBalance    string
	LastEntryBalance string
}

// NewLedgerInconsistencyError creates a LedgerInconsistencyError for the diverged wallet.
func NewLedgerInconsistencyError(walletID, walletBalance, lastEntryBalance string) *LedgerInconsistencyError {
	return &LedgerInconsistencyError{
		WalletID:         walletID,
		WalletBalance:    walletBalance,
		LastEntryBalance: lastEntryBalance,
	}
}

func (e *LedgerInconsistencyError) Error() string {
	return sanitize(fmt.Sprintf("%s: wallet %s balance is %s but last entry balance is %s",
		ErrLedgerInconsistency, e.WalletID, e.WalletBalance, e.LastEntryBalance))
}

func (e *LedgerInconsistencyError) Unwrap() error {
	return ErrLedgerInconsistency
}
