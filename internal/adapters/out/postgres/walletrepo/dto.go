// Package walletrepo implements wallet and ledger persistence over GORM.
// Ledger rows are append-only: they are inserted once and never updated.
package walletrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/wallet"

	"github.com/google/uuid"
)

// WalletDTO is the database representation of a courier wallet.
type WalletDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance        string    `gorm:"type:numeric(12,2)"`
	TotalEarned    string    `gorm:"type:numeric(12,2)"`
	TotalWithdrawn string    `gorm:"type:numeric(12,2)"`
	TotalBonuses   string    `gorm:"type:numeric(12,2)"`
	TotalFines     string    `gorm:"type:numeric(12,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides GORM's default naming to use "wallets".
func (WalletDTO) TableName() string {
	return "wallets"
}

// LedgerEntryDTO is one immutable ledger row.
type LedgerEntryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	WalletID      uuid.UUID `gorm:"type:uuid;index"`
	Kind          string
	Amount        string `gorm:"type:numeric(12,2)"`
	BalanceBefore string `gorm:"type:numeric(12,2)"`
	BalanceAfter  string `gorm:"type:numeric(12,2)"`
	Reference     string
	CreatedAt     time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "ledger_entries".
func (LedgerEntryDTO) TableName() string {
	return "ledger_entries"
}

func fromDomain(aggregate *wallet.Wallet) WalletDTO {
	return WalletDTO{
		ID:             aggregate.ID().Bytes(),
		Balance:        aggregate.Balance().String(),
		TotalEarned:    aggregate.TotalEarned().String(),
		TotalWithdrawn: aggregate.TotalWithdrawn().String(),
		TotalBonuses:   aggregate.TotalBonuses().String(),
		TotalFines:     aggregate.TotalFines().String(),
	}
}

func toDomain(dto WalletDTO) (*wallet.Wallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	amounts := make([]kernel.Money, 0, 5)
	for _, raw := range []string{dto.Balance, dto.TotalEarned, dto.TotalWithdrawn, dto.TotalBonuses, dto.TotalFines} {
		money, moneyErr := kernel.NewMoneyFromString(raw)
		if moneyErr != nil {
			return nil, moneyErr
		}
		amounts = append(amounts, money)
	}

	return wallet.RestoreWallet(id, amounts[0], amounts[1], amounts[2], amounts[3], amounts[4])
}

func entryFromDomain(entry wallet.LedgerEntry) LedgerEntryDTO {
	return LedgerEntryDTO{
		ID:            entry.ID().Bytes(),
		WalletID:      entry.WalletID().Bytes(),
		Kind:          entry.Kind().String(),
		Amount:        entry.Amount().String(),
		BalanceBefore: entry.BalanceBefore().String(),
		BalanceAfter:  entry.BalanceAfter().String(),
		Reference:     entry.Reference(),
		CreatedAt:     entry.CreatedAt(),
	}
}

func entryToDomain(dto LedgerEntryDTO) (wallet.LedgerEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return wallet.LedgerEntry{}, err
	}
	walletID, err := kernel.UUIDFromBytes(dto.WalletID[:])
	if err != nil {
		return wallet.LedgerEntry{}, err
	}
	kind, err := wallet.ParseKind(dto.Kind)
	if err != nil {
		return wallet.LedgerEntry{}, err
	}

	amounts := make([]kernel.Money, 0, 3)
	for _, raw := range []string{dto.Amount, dto.BalanceBefore, dto.BalanceAfter} {
		money, moneyErr := kernel.NewMoneyFromString(raw)
		if moneyErr != nil {
			return wallet.LedgerEntry{}, moneyErr
		}
		amounts = append(amounts, money)
	}

	return wallet.RestoreLedgerEntry(
		id, walletID, kind,
		amounts[0], amounts[1], amounts[2],
		dto.Reference, dto.CreatedAt,
	), nil
}
