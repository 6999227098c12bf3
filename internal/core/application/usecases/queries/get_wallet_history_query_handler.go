package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/wallet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWalletHistoryQueryHandler reads a wallet's ledger newest first.
type GetWalletHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletHistoryQueryHandler creates a handler for ledger history queries.
func NewGetWalletHistoryQueryHandler(db *gorm.DB) GetWalletHistoryQueryHandler {
	return GetWalletHistoryQueryHandler{db: db}
}

// Handle returns all ledger entries for the wallet, newest first. An unknown
// wallet yields an empty history, not an error.
func (h GetWalletHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetWalletHistoryQuery,
) ([]GetWalletHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, kind, amount, balance_before, balance_after, reference, created_at
		FROM ledger_entries
		WHERE wallet_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.WalletID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetWalletHistoryQueryResponse, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			kind          string
			amount        string
			balanceBefore string
			balanceAfter  string
			reference     string
			createdAt     time.Time
		)
		if err = rows.Scan(&id, &kind, &amount, &balanceBefore, &balanceAfter, &reference, &createdAt); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entryKind, kindErr := wallet.ParseKind(kind)
		if kindErr != nil {
			return nil, kindErr
		}

		response := GetWalletHistoryQueryResponse{
			ID:        entryID,
			Kind:      entryKind,
			Reference: reference,
			CreatedAt: createdAt,
		}
		if response.Amount, err = kernel.NewMoneyFromString(amount); err != nil {
			return nil, err
		}
		if response.BalanceBefore, err = kernel.NewMoneyFromString(balanceBefore); err != nil {
			return nil, err
		}
		if response.BalanceAfter, err = kernel.NewMoneyFromString(balanceAfter); err != nil {
			return nil, err
		}

		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}
