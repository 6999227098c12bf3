// Package errs provides the standardized error taxonomy for the fulfillment core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The taxonomy covers every caller-facing failure of the core:
//   - InvalidTransitionError: an order-state edge not present in the transition table
//   - ObjectNotFoundError: a referenced order, ticket or wallet is absent
//   - AlreadyAssignedError: the courier claim race was lost
//   - InvalidStateError: an operation precondition on a sub-entity state failed
//   - LedgerInconsistencyError: the wallet balance diverged from its ledger (fatal)
//   - ValueIsRequiredError / ValueIsInvalidError: input validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Notification delivery failures are deliberately absent from this package:
// they are logged and swallowed at the adapter boundary and never propagate
// into a state change.
package errs
