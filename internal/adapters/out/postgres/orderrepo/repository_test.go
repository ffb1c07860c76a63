package orderrepo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/lineitemrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ int64, _ any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
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

	suite.repo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_line_items").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newOrder(number string, supplierID int64) *order.Order {
	o, err := order.NewOrder(number, supplierID, 7, "Warehouse 4, Dock B")
	suite.Require().NoError(err)
	return o
}

func (suite *GormOrderRepositoryTestSuite) TestAdd_AssignsGeneratedID() {
	ctx := context.Background()
	o := suite.newOrder("PED-2025-00001", 1)

	err := suite.repo.Add(ctx, o)

	suite.Require().NoError(err)
	suite.Positive(o.ID())
}

func (suite *GormOrderRepositoryTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder("PED-2025-00001", 1)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	loaded, err := suite.repo.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(o.ID(), loaded.ID())
	suite.Equal("PED-2025-00001", loaded.OrderNumber())
	suite.Equal(int64(1), loaded.SupplierID())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal("Warehouse 4, Dock B", loaded.DeliveryAddress())
}

func (suite *GormOrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), 9000)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	o := suite.newOrder("PED-2025-00001", 1)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	suite.Require().NoError(o.ChangeStatus(order.Approved))
	suite.Require().NoError(suite.repo.Update(ctx, o))

	loaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Approved, loaded.Status())
}

func (suite *GormOrderRepositoryTestSuite) TestGetBySupplier_FiltersOtherSuppliers() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("PED-2025-00001", 1)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("PED-2025-00002", 2)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("PED-2025-00003", 1)))

	result, err := suite.repo.GetBySupplier(ctx, 1)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	for _, o := range result {
		suite.Equal(int64(1), o.SupplierID())
	}
}

func (suite *GormOrderRepositoryTestSuite) TestGetByStatus_FiltersOtherStatuses() {
	ctx := context.Background()
	pending := suite.newOrder("PED-2025-00001", 1)
	suite.Require().NoError(suite.repo.Add(ctx, pending))

	approved := suite.newOrder("PED-2025-00002", 1)
	suite.Require().NoError(approved.ChangeStatus(order.Approved))
	suite.Require().NoError(suite.repo.Add(ctx, approved))

	result, err := suite.repo.GetByStatus(ctx, order.Approved)

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.Equal(approved.ID(), result[0].ID())
}

func (suite *GormOrderRepositoryTestSuite) TestGetAll_EmptyDatabase() {
	result, err := suite.repo.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GormOrderRepositoryTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	o := suite.newOrder("PED-2025-00001", 1)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	suite.Require().NoError(suite.repo.Delete(ctx, o.ID()))

	_, err := suite.repo.Get(ctx, o.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestDelete_NotFound() {
	err := suite.repo.Delete(context.Background(), 9000)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestNextOrderNumber_StartsAtOne() {
	ctx := context.Background()

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	repo := orderrepo.NewGormOrderRepository(tx, mockAggregateTracker{})
	number, err := repo.NextOrderNumber(ctx, 2025)

	suite.Require().NoError(err)
	suite.Equal("PED-2025-00001", number)
}

func (suite *GormOrderRepositoryTestSuite) TestNextOrderNumber_YearsAreIndependent() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("PED-2024-00017", 1)))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	repo := orderrepo.NewGormOrderRepository(tx, mockAggregateTracker{})

	number, err := repo.NextOrderNumber(ctx, 2024)
	suite.Require().NoError(err)
	suite.Equal("PED-2024-00018", number)

	number, err = repo.NextOrderNumber(ctx, 2025)
	suite.Require().NoError(err)
	suite.Equal("PED-2025-00001", number)
}

func (suite *GormOrderRepositoryTestSuite) TestNextOrderNumber_ConcurrentIssuanceIsUnique() {
	ctx := context.Background()
	const workers = 10

	numbers := make(chan string, workers)
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tx := suite.db.Begin()
			if tx.Error != nil {
				suite.T().Error(tx.Error)
				return
			}

			repo := orderrepo.NewGormOrderRepository(tx, mockAggregateTracker{})
			number, err := repo.NextOrderNumber(ctx, 2025)
			if err != nil {
				tx.Rollback()
				suite.T().Error(err)
				return
			}

			o, err := order.NewOrder(number, 1, 7, "Warehouse 4, Dock B")
			if err != nil {
				tx.Rollback()
				suite.T().Error(err)
				return
			}

			if err := repo.Add(ctx, o); err != nil {
				tx.Rollback()
				suite.T().Error(err)
				return
			}

			if err := tx.Commit().Error; err != nil {
				suite.T().Error(err)
				return
			}

			numbers <- number
		}()
	}

	wg.Wait()
	close(numbers)

	issued := make(map[string]bool)
	for number := range numbers {
		suite.False(issued[number], "number %s issued twice", number)
		issued[number] = true
	}

	suite.Len(issued, workers)
	for i := 1; i <= workers; i++ {
		expected := fmt.Sprintf("PED-2025-%05d", i)
		suite.True(issued[expected], "number %s was never issued", expected)
	}
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
