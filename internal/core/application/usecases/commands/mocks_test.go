package commands_test

import (
	"context"
	"errors"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetBySupplier(_ context.Context, _ int64) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetByStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) NextOrderNumber(ctx context.Context, year int) (string, error) {
	args := m.Called(ctx, year)
	return args.String(0), args.Error(1)
}

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) Add(ctx context.Context, line *order.LineItem) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockLineItemRepository) GetByOrderID(ctx context.Context, orderID int64) ([]*order.LineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Get(ctx context.Context, id int64) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetNameByID(_ context.Context, _ int64) (string, error) {
	return "Acme Supplies", nil
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(_ context.Context, _ int64) (*user.User, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockUserRepository) GetByExternalUID(ctx context.Context, uid string) (*user.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetFullNameByID(_ context.Context, _ int64) (string, error) {
	return "Maria Lopez", nil
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetNameByID(_ context.Context, _ int64) (string, error) {
	return "", errors.New("not implemented in mock")
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetBySupplier(_ context.Context, _ int64) ([]*supplier.CatalogItem, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockCatalogRepository) GetBySupplierAndProduct(
	ctx context.Context,
	supplierID, productID int64,
) (*supplier.CatalogItem, error) {
	args := m.Called(ctx, supplierID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.CatalogItem), args.Error(1)
}
