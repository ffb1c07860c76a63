package ports

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// LineItemRepository defines the persistence contract for order line items.
type LineItemRepository interface {
	// Add persists a new line item and assigns its identifier.
	Add(ctx context.Context, line *order.LineItem) error

	// GetByOrderID retrieves all lines of an order in insertion order.
	GetByOrderID(ctx context.Context, orderID int64) ([]*order.LineItem, error)

	// DeleteByOrderID removes all lines of an order. Deleting zero lines is
	// not an error.
	DeleteByOrderID(ctx context.Context, orderID int64) error
}
