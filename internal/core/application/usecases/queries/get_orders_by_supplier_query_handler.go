package queries

import (
	"context"

	"procurement/internal/core/application/views"
	"procurement/internal/core/ports"
)

// GetOrdersBySupplierQueryHandler lists the orders placed with one supplier.
// The supplier must exist; filtering by an unknown supplier is an error, not
// an empty result.
type GetOrdersBySupplierQueryHandler struct {
	orders    ports.OrderRepository
	suppliers ports.SupplierRepository
	assembler views.Assembler
}

// NewGetOrdersBySupplierQueryHandler creates a handler for the by-supplier query.
func NewGetOrdersBySupplierQueryHandler(
	orders ports.OrderRepository,
	suppliers ports.SupplierRepository,
	assembler views.Assembler,
) GetOrdersBySupplierQueryHandler {
	return GetOrdersBySupplierQueryHandler{
		orders:    orders,
		suppliers: suppliers,
		assembler: assembler,
	}
}

// Handle executes the query. Returns an empty slice when the supplier exists
// but has no orders.
func (h GetOrdersBySupplierQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersBySupplierQuery,
) ([]views.OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.suppliers.Get(ctx, query.SupplierID()); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetBySupplier(ctx, query.SupplierID())
	if err != nil {
		return nil, err
	}

	return h.assembler.Summaries(ctx, orders), nil
}
