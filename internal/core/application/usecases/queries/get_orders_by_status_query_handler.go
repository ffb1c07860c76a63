package queries

import (
	"context"

	"procurement/internal/core/application/views"
	"procurement/internal/core/ports"
)

// GetOrdersByStatusQueryHandler lists the orders currently in one status.
type GetOrdersByStatusQueryHandler struct {
	orders    ports.OrderRepository
	assembler views.Assembler
}

// NewGetOrdersByStatusQueryHandler creates a handler for the by-status query.
func NewGetOrdersByStatusQueryHandler(
	orders ports.OrderRepository,
	assembler views.Assembler,
) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orders: orders, assembler: assembler}
}

// Handle executes the query. Returns an empty slice when no order is in the
// requested status.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]views.OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	return h.assembler.Summaries(ctx, orders), nil
}
