package ports

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It persists order headers (number, references, status, address, totals);
// line items are handled by LineItemRepository.
type OrderRepository interface {
	// Add persists a new order header and assigns its identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order header.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order header by its identifier.
	// Returns an *errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves all order headers.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetBySupplier retrieves all orders placed with the given supplier.
	GetBySupplier(ctx context.Context, supplierID int64) ([]*order.Order, error)

	// GetByStatus retrieves all orders currently in the given status.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Delete removes an order header.
	// Returns an *errs.ObjectNotFoundError when absent.
	Delete(ctx context.Context, id int64) error

	// NextOrderNumber issues the next order number for the given calendar
	// year. Issuance is atomic with respect to all concurrent issuers of the
	// same year: no two callers ever receive the same number. Implementations
	// require an active unit-of-work transaction; a rollback releases the
	// number (gaps are tolerated, duplicates are not).
	NextOrderNumber(ctx context.Context, year int) (string, error)
}
