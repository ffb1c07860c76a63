package queries

import (
	"context"

	"procurement/internal/core/application/views"
	"procurement/internal/core/ports"
)

// GetOrderQueryHandler fetches one order and assembles its detail view.
type GetOrderQueryHandler struct {
	orders    ports.OrderRepository
	assembler views.Assembler
}

// NewGetOrderQueryHandler creates a handler for the single-order query.
func NewGetOrderQueryHandler(
	orders ports.OrderRepository,
	assembler views.Assembler,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, assembler: assembler}
}

// Handle executes the query. Returns an object-not-found error when no order
// has the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (views.OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return views.OrderDetail{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return views.OrderDetail{}, err
	}

	return h.assembler.Detail(ctx, o)
}
