package ports

import (
	"context"

	"procurement/internal/core/domain/model/supplier"
)

// SupplierRepository is the read-only lookup port for supplier records.
type SupplierRepository interface {
	// Get retrieves a supplier by id.
	// Returns an *errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id int64) (*supplier.Supplier, error)

	// GetNameByID retrieves only the supplier's company name.
	// Returns an *errs.ObjectNotFoundError when absent.
	GetNameByID(ctx context.Context, id int64) (string, error)
}

// CatalogRepository is the read-only lookup port for supplier catalog
// relations.
type CatalogRepository interface {
	// GetBySupplier retrieves all catalog relations of a supplier.
	GetBySupplier(ctx context.Context, supplierID int64) ([]*supplier.CatalogItem, error)

	// GetBySupplierAndProduct retrieves the catalog relation for the given
	// pair. Returns (nil, nil) when no relation exists: absence is a business
	// condition evaluated by the caller, not a lookup failure.
	GetBySupplierAndProduct(ctx context.Context, supplierID, productID int64) (*supplier.CatalogItem, error)
}
