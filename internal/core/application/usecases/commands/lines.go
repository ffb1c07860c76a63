package commands

import (
	"context"
	"fmt"

	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineInput carries the raw values for one order line as submitted by the
// caller. Validation and amount calculation happen in the domain layer.
type LineInput struct {
	ProductID      int64
	Quantity       int
	UnitPrice      decimal.Decimal
	TaxRatePercent decimal.Decimal
}

// catalogValidator checks submitted lines against the product store and the
// supplier's catalog. Shared by the create and update handlers so both enforce
// the same rules in the same order.
type catalogValidator struct {
	products  ports.ProductRepository
	catalog   ports.CatalogRepository
	suppliers ports.SupplierRepository
}

func newCatalogValidator(
	products ports.ProductRepository,
	catalog ports.CatalogRepository,
	suppliers ports.SupplierRepository,
) catalogValidator {
	return catalogValidator{
		products:  products,
		catalog:   catalog,
		suppliers: suppliers,
	}
}

// validateLines verifies the line set is non-empty and that every referenced
// product exists, is active, and belongs to the supplier's active catalog.
// Lines are checked in submission order and the first violation wins.
func (v catalogValidator) validateLines(ctx context.Context, supplierID int64, lines []LineInput) error {
	if len(lines) == 0 {
		return errs.NewBusinessRuleError(
			"an order must contain at least one line item",
			errs.CodeEmptyLines,
		)
	}

	for _, line := range lines {
		product, err := v.products.Get(ctx, line.ProductID)
		if err != nil {
			return err
		}

		if !product.Active {
			return errs.NewBusinessRuleError(
				fmt.Sprintf("product '%s' (ID: %d) is not active", product.Name, product.ID),
				errs.CodeProductInactive,
			)
		}

		catalogItem, err := v.catalog.GetBySupplierAndProduct(ctx, supplierID, line.ProductID)
		if err != nil {
			return err
		}

		if catalogItem == nil || !catalogItem.Active {
			supplierName, nameErr := v.suppliers.GetNameByID(ctx, supplierID)
			if nameErr != nil || supplierName == "" {
				supplierName = "unknown"
			}

			return errs.NewBusinessRuleError(
				fmt.Sprintf(
					"product '%s' (ID: %d) is not in the catalog of supplier '%s' (ID: %d)",
					product.Name, product.ID, supplierName, supplierID,
				),
				errs.CodeProductNotInCatalog,
			)
		}
	}

	return nil
}
