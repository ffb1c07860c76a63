package queries

import (
	"context"

	"procurement/internal/core/application/views"
	"procurement/internal/core/ports"
)

// GetAllOrdersQueryHandler lists every order as an enriched summary.
type GetAllOrdersQueryHandler struct {
	orders    ports.OrderRepository
	assembler views.Assembler
}

// NewGetAllOrdersQueryHandler creates a handler for the list-all query.
func NewGetAllOrdersQueryHandler(
	orders ports.OrderRepository,
	assembler views.Assembler,
) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders, assembler: assembler}
}

// Handle executes the query. Returns an empty slice when no orders exist.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]views.OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return h.assembler.Summaries(ctx, orders), nil
}
