package commands

import (
	"context"
	"fmt"

	"procurement/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles order removal.
// An order can only be removed while it is still pending; its lines are
// removed in the same transaction.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order removal operations.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	lineRepo := uow.LineItemRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !existing.CanDelete() {
		return errs.NewBusinessRuleError(
			fmt.Sprintf("order '%s' cannot be deleted in status '%s'",
				existing.OrderNumber(), existing.Status()),
			errs.CodeOrderNotDeletable,
		)
	}

	if err = lineRepo.DeleteByOrderID(ctx, existing.ID()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
