// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent shape: validation,
// transaction management, persistence, then best-effort notification.
package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// Clock supplies the current time to handlers. Injectable so timeout
// thresholds and duration arithmetic are testable with a fixed time.
type Clock func() time.Time

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler asks only for the repositories it writes, so the
// factory wiring documents every command's atomic footprint.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TicketRepoFactory provides access to the ticket repository within a transaction.
	TicketRepoFactory interface {
		TicketRepository() ports.TicketRepository
	}

	// WalletRepoFactory provides access to the wallet repository within a transaction.
	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// courier claims, declines, operator assignment and timeout enforcement.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// KitchenUoW manages transactions spanning an order and its ticket,
	// keeping the preparation sub-state in lockstep with the order.
	KitchenUoW interface {
		TxManager
		OrderRepoFactory
		TicketRepoFactory
	}

	// KitchenUoWFactory creates new kitchen unit of work instances.
	KitchenUoWFactory interface {
		Create() KitchenUoW
	}

	// TicketUoW manages transactions for ticket-only operations
	// (pickup marking, priority updates).
	TicketUoW interface {
		TxManager
		TicketRepoFactory
	}

	// TicketUoWFactory creates new ticket unit of work instances.
	TicketUoWFactory interface {
		Create() TicketUoW
	}

	// LedgerUoW manages transactions for wallet-only postings.
	LedgerUoW interface {
		TxManager
		WalletRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// DeliveryUoW manages transactions spanning an order and a wallet:
	// delivery completion commits the terminal order status and the courier
	// payout together or not at all.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		WalletRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
