// Package order contains the Order aggregate and its status state machine.
//
// The transition table in status.go is the single source of truth for which
// order-state edges are legal. Aggregate methods (Place, Accept, Reject,
// Cancel, StartPreparing, MarkReady, StartDelivery, CompleteDelivery) all go
// through TransitionTo, which validates the edge and appends exactly one
// append-only history record per change.
//
// Courier binding lives in the embedded Delivery record: BindCourier enforces
// the at-most-one-courier invariant in memory, while the storage adapter
// repeats the same check as an atomic conditional update to resolve
// concurrent claims.
package order
