package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/walletrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/wallet"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetWalletTotalsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetWalletTotalsQueryHandler
}

func (suite *GetWalletTotalsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&walletrepo.WalletDTO{}, &walletrepo.LedgerEntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetWalletTotalsQueryHandler(db)
}

func (suite *GetWalletTotalsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetWalletTotalsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE wallets, ledger_entries CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetWalletTotalsQueryHandlerTestSuite) TestHandle_UnknownWallet_ReturnsNotFound() {
	query, err := queries.NewGetWalletTotalsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFoundErr)
}

func (suite *GetWalletTotalsQueryHandlerTestSuite) TestHandle_FreshWallet_ReturnsZeroTotals() {
	walletID := suite.seedWallet()

	query, err := queries.NewGetWalletTotalsQuery(walletID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(walletID, result.WalletID)
	suite.True(result.Balance.IsEqual(kernel.ZeroMoney()))
	suite.True(result.TotalEarned.IsEqual(kernel.ZeroMoney()))
	suite.True(result.TotalWithdrawn.IsEqual(kernel.ZeroMoney()))
	suite.True(result.TotalBonuses.IsEqual(kernel.ZeroMoney()))
	suite.True(result.TotalFines.IsEqual(kernel.ZeroMoney()))
}

func (suite *GetWalletTotalsQueryHandlerTestSuite) TestHandle_ReflectsPostedMovements() {
	walletID := suite.seedWallet(
		posting{wallet.KindDeliveryFee, "5.00", "ORD-1", time.Now()},
		posting{wallet.KindBonus, "10.00", "WEEKLY-BONUS", time.Now()},
		posting{wallet.KindWithdrawal, "12.00", "PAYOUT-77", time.Now()},
		posting{wallet.KindFine, "1.25", "LATE-DELIVERY", time.Now()},
	)

	query, err := queries.NewGetWalletTotalsQuery(walletID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.Balance.IsEqual(kernel.MustMoney("1.75")))
	suite.True(result.TotalEarned.IsEqual(kernel.MustMoney("15.00")))
	suite.True(result.TotalWithdrawn.IsEqual(kernel.MustMoney("12.00")))
	suite.True(result.TotalBonuses.IsEqual(kernel.MustMoney("10.00")))
	suite.True(result.TotalFines.IsEqual(kernel.MustMoney("1.25")))
}

func (suite *GetWalletTotalsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetWalletTotalsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetWalletTotalsQuery constructor")
}

func (suite *GetWalletTotalsQueryHandlerTestSuite) seedWallet(postings ...posting) kernel.UUID {
	walletID := kernel.NewUUID()
	w, err := wallet.NewWallet(walletID)
	suite.Require().NoError(err)

	for _, p := range postings {
		_, postErr := w.Post(p.kind, kernel.MustMoney(p.amount), p.reference, p.at)
		suite.Require().NoError(postErr)
	}

	repo := walletrepo.NewGormWalletRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), w))
	return walletID
}

func TestGetWalletTotalsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetWalletTotalsQueryHandlerTestSuite))
}
