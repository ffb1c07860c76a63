package postgres_test

import (
	"context"
	"testing"
	"time"

	adapter "procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/postgres/lineitemrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *adapter.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &lineitemrepo.LineItemDTO{})
	suite.Require().NoError(err)

	suite.factory = adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_line_items").Error
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) countRows(table string) int64 {
	var count int64
	err := suite.db.Table(table).Count(&count).Error
	suite.Require().NoError(err)
	return count
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_PersistsOrderAndLines() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := order.NewOrder("PED-2025-00001", 1, 7, "Warehouse 4, Dock B")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	line, err := order.NewLineItem(o.ID(), 3, 500,
		decimal.RequireFromString("0.12"), decimal.RequireFromString("21"))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.LineItemRepository().Add(ctx, line))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countRows("orders"))
	suite.Equal(int64(1), suite.countRows("order_line_items"))
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_DiscardsOrderAndLines() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := order.NewOrder("PED-2025-00001", 1, 7, "Warehouse 4, Dock B")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	line, err := order.NewLineItem(o.ID(), 3, 500,
		decimal.RequireFromString("0.12"), decimal.RequireFromString("21"))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.LineItemRepository().Add(ctx, line))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countRows("orders"))
	suite.Equal(int64(0), suite.countRows("order_line_items"))
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().Error(err)
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Rollback(context.Background())
	suite.Require().Error(err)
}

func (suite *GormUnitOfWorkTestSuite) TestBegin_Twice_IsIdempotent() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
