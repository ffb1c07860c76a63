package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteOrderCommand(42)

	repo := new(MockOrderRepository)
	lineRepo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		uow.On("LineItemRepository").Return(lineRepo).Once(),
		repo.On("Get", ctx, int64(42)).Return(storedOrder(t, order.Pending), nil).Once(),
		lineRepo.On("DeleteByOrderID", ctx, int64(42)).Return(nil).Once(),
		repo.On("Delete", ctx, int64(42)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	lineRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotDeletableWhenApproved(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteOrderCommand(42)

	repo := new(MockOrderRepository)
	lineRepo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		uow.On("LineItemRepository").Return(lineRepo).Once(),
		repo.On("Get", ctx, int64(42)).Return(storedOrder(t, order.Approved), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)

	var bre *errs.BusinessRuleError
	require.ErrorAs(t, err, &bre)
	assert.Equal(t, errs.CodeOrderNotDeletable, bre.Code)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteOrderCommand(9000)

	repo := new(MockOrderRepository)
	lineRepo := new(MockLineItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		uow.On("LineItemRepository").Return(lineRepo).Once(),
		repo.On("Get", ctx, int64(9000)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(9000))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
}
