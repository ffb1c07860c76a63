package commands

import (
	"context"
	"fmt"
	"time"

	"procurement/internal/core/application/views"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Validates the supplier, the caller, and every submitted line against the
// supplier's catalog, then issues the next order number and persists the
// order with its lines in a single transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, suppliers, users, products, catalog, assembler)
//	cmd, _ := NewCreateOrderCommand(supplierID, callerUID, "Warehouse 4, Dock B", lines)
//
//	detail, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	suppliers  ports.SupplierRepository
	users      ports.UserRepository
	validator  catalogValidator
	assembler  views.Assembler
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	suppliers ports.SupplierRepository,
	users ports.UserRepository,
	products ports.ProductRepository,
	catalog ports.CatalogRepository,
	assembler views.Assembler,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		suppliers:  suppliers,
		users:      users,
		validator:  newCatalogValidator(products, catalog, suppliers),
		assembler:  assembler,
	}
}

// Handle processes the order creation command.
// Checks run in a fixed order: supplier, caller, line set, then each line
// against the catalog. The order number is issued inside the transaction so
// concurrent creations never collide.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (views.OrderDetail, error) {
	if err := cmd.Validate(); err != nil {
		return views.OrderDetail{}, err
	}

	supplier, err := h.suppliers.Get(ctx, cmd.SupplierID())
	if err != nil {
		return views.OrderDetail{}, err
	}

	if !supplier.Active {
		return views.OrderDetail{}, errs.NewBusinessRuleError(
			fmt.Sprintf("supplier '%s' (ID: %d) is not active", supplier.CompanyName, supplier.ID),
			errs.CodeSupplierInactive,
		)
	}

	user, err := h.users.GetByExternalUID(ctx, cmd.CallerUID())
	if err != nil {
		return views.OrderDetail{}, err
	}

	if !user.Active {
		return views.OrderDetail{}, errs.NewBusinessRuleError(
			fmt.Sprintf("user '%s' (ID: %d) is not active", user.Username, user.ID),
			errs.CodeUserInactive,
		)
	}

	if err = h.validator.validateLines(ctx, supplier.ID, cmd.Lines()); err != nil {
		return views.OrderDetail{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return views.OrderDetail{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	lineRepo := uow.LineItemRepository()

	orderNumber, err := orderRepo.NextOrderNumber(ctx, time.Now().UTC().Year())
	if err != nil {
		return views.OrderDetail{}, err
	}

	newOrder, err := order.NewOrder(orderNumber, supplier.ID, user.ID, cmd.DeliveryAddress())
	if err != nil {
		return views.OrderDetail{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return views.OrderDetail{}, err
	}

	lines := make([]*order.LineItem, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		line, lineErr := order.NewLineItem(
			newOrder.ID(),
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

	if err = newOrder.ReplaceLines(lines); err != nil {
		return views.OrderDetail{}, err
	}

	if err = orderRepo.Update(ctx, newOrder); err != nil {
		return views.OrderDetail{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.OrderDetail{}, err
	}

	return h.assembler.Detail(ctx, newOrder)
}
