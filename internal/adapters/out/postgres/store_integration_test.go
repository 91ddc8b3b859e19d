package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "freightdesk/internal/adapters/out/postgres"
	"freightdesk/internal/adapters/out/storetest"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// StoreIntegrationTestSuite exercises the relational EntityStore against a
// real PostgreSQL container.
type StoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *postgresadapter.Store
}

func (suite *StoreIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgresadapter.Migrate(db))
}

func (suite *StoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE packages, loads, customers, package_index_entries").Error,
	)
	suite.store = postgresadapter.NewStore(suite.db)
}

func (suite *StoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreIntegrationTestSuite) TestContract() {
	storetest.Run(suite.T(), func(_ *testing.T) ports.EntityStore {
		suite.Require().NoError(
			suite.db.Exec("TRUNCATE TABLE packages, loads, customers, package_index_entries").Error,
		)
		return postgresadapter.NewStore(suite.db)
	})
}

func (suite *StoreIntegrationTestSuite) TestPutPackage_ReplacesOptionalColumns() {
	ctx := context.Background()

	loadID := kernel.NewUUID()
	pkg, err := packages.RestorePackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewDate(2025, 6, 1),
		packages.StatusReady, &loadID, nil, nil,
		decimal.NewFromInt(3), "Utrecht", "", "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.PutPackage(ctx, pkg))

	pkg.Unassign()
	suite.Require().NoError(suite.store.PutPackage(ctx, pkg))

	got, err := suite.store.GetPackage(ctx, pkg.ID())
	suite.Require().NoError(err)
	suite.Nil(got.LoadID())
}

func (suite *StoreIntegrationTestSuite) TestTransact_RollsBackOnError() {
	ctx := context.Background()

	pkg, err := packages.NewPackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewDate(2025, 6, 1),
		decimal.NewFromInt(1), "Delft",
	)
	suite.Require().NoError(err)

	txErr := suite.store.Transact(ctx, func(tx ports.EntityStore) error {
		if err = tx.PutPackage(ctx, pkg); err != nil {
			return err
		}
		return context.Canceled
	})
	suite.Require().Error(txErr)

	_, err = suite.store.GetPackage(ctx, pkg.ID())
	suite.Error(err)
}

func TestStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoreIntegrationTestSuite))
}
