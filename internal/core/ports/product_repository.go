package ports

import (
	"context"

	"procurement/internal/core/domain/model/product"
)

// ProductRepository is the read-only lookup port for product records.
type ProductRepository interface {
	// Get retrieves a product by id.
	// Returns an *errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetNameByID retrieves only the product's display name.
	// Returns an *errs.ObjectNotFoundError when absent.
	GetNameByID(ctx context.Context, id int64) (string, error)
}
