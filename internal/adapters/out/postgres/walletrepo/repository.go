package walletrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/wallet"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWalletRepository implements WalletRepository using GORM.
type GormWalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWalletRepository creates a new GORM wallet repository.
func NewGormWalletRepository(db *gorm.DB, tracker aggregateTracker) *GormWalletRepository {
	return &GormWalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new empty wallet.
func (r *GormWalletRepository) Add(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the wallet's balance and running totals.
func (r *GormWalletRepository) Update(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WalletDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("wallet", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForUpdate retrieves a wallet and locks its row for the remainder of the
// transaction, serializing concurrent postings on the same wallet.
func (r *GormWalletRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*wallet.Wallet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WalletDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wallet", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLastEntry retrieves the most recent ledger entry, or nil for an empty
// ledger. The id tiebreak keeps the ordering stable for entries posted within
// the same timestamp.
func (r *GormWalletRepository) GetLastEntry(ctx context.Context, walletID kernel.UUID) (*wallet.LedgerEntry, error) {
	if err := walletID.Validate(); err != nil {
		return nil, err
	}

	var dto LedgerEntryDTO
	err := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID.Bytes()).
		Order("created_at DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	entry, err := entryToDomain(dto)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// AppendEntry persists an immutable ledger entry.
func (r *GormWalletRepository) AppendEntry(ctx context.Context, entry wallet.LedgerEntry) error {
	dto := entryFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetEntries retrieves the full ledger for a wallet, newest first.
func (r *GormWalletRepository) GetEntries(ctx context.Context, walletID kernel.UUID) ([]wallet.LedgerEntry, error) {
	if err := walletID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LedgerEntryDTO
	err := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID.Bytes()).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]wallet.LedgerEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := entryToDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
