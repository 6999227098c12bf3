// Package wallet contains the courier Wallet aggregate and its append-only
// ledger. Every monetary movement is a LedgerEntry recording balanceBefore
// and balanceAfter; the wallet's stored balance must always equal the
// balanceAfter of its most recent entry, and Post refuses to run when
// VerifyAgainst detects a divergence.
package wallet
