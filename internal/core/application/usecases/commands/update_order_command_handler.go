package commands

import (
	"context"
	"fmt"
	"strings"

	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles order modification.
// Applies the requested status transition, address change, and line
// replacement to the loaded aggregate, in that order, inside one
// transaction. The status token is always validated; naming the current
// status keeps it unchanged. Address and lines are skipped when the
// command left them empty.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  catalogValidator
	assembler  views.Assembler
}

// NewUpdateOrderCommandHandler creates a handler for order modification operations.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	suppliers ports.SupplierRepository,
	products ports.ProductRepository,
	catalog ports.CatalogRepository,
	assembler views.Assembler,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  newCatalogValidator(products, catalog, suppliers),
		assembler:  assembler,
	}
}

// Handle processes the order update command.
// Status transitions go through the state machine and fail with an invalid
// state transition error when the move is not allowed. Line replacement is
// only permitted while the order is still pending.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (views.OrderDetail, error) {
	if err := cmd.Validate(); err != nil {
		return views.OrderDetail{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.OrderDetail{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	lineRepo := uow.LineItemRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return views.OrderDetail{}, err
	}

	target, err := order.StatusFromName(cmd.StatusName())
	if err != nil {
		return views.OrderDetail{}, err
	}

	if target != existing.Status() {
		if err = existing.ChangeStatus(target); err != nil {
			return views.OrderDetail{}, err
		}
	}

	if strings.TrimSpace(cmd.DeliveryAddress()) != "" {
		if err = existing.SetDeliveryAddress(cmd.DeliveryAddress()); err != nil {
			return views.OrderDetail{}, err
		}
	}

	if len(cmd.Lines()) > 0 {
		if !existing.CanEditLines() {
			return views.OrderDetail{}, errs.NewBusinessRuleError(
				fmt.Sprintf("lines of order '%s' cannot be modified in status '%s'",
					existing.OrderNumber(), existing.Status()),
				errs.CodeLinesLocked,
			)
		}

		if err = h.validator.validateLines(ctx, existing.SupplierID(), cmd.Lines()); err != nil {
			return views.OrderDetail{}, err
		}

		if err = lineRepo.DeleteByOrderID(ctx, existing.ID()); err != nil {
			return views.OrderDetail{}, err
		}

		lines := make([]*order.LineItem, 0, len(cmd.Lines()))
		for _, input := range cmd.Lines() {
			line, lineErr := order.NewLineItem(
				existing.ID(),
				input.ProductID,
				input.Quantity,
				input.UnitPrice,
				input.TaxRatePercent,
			)
			if lineErr != nil {
				return views.OrderDetail{}, lineErr
			}

			if lineErr = lineRepo.Add(ctx, line); lineErr != nil {
				return views.OrderDetail{}, lineErr
			}

			lines = append(lines, line)
		}

		if err = existing.ReplaceLines(lines); err != nil {
			return views.OrderDetail{}, err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return views.OrderDetail{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.OrderDetail{}, err
	}

	return h.assembler.Detail(ctx, existing)
}
