package queries

import (
	"errors"

	"procurement/internal/pkg/guard"
)

var (
	ErrGetOrdersBySupplierQueryIsNotConstructed = errors.New(
		"GetOrdersBySupplierQuery must be created via NewGetOrdersBySupplierQuery constructor",
	)
	ErrSupplierIDIsInvalid = errors.New("supplier id must be greater than 0")
)

// GetOrdersBySupplierQuery retrieves the orders placed with one supplier.
type GetOrdersBySupplierQuery struct { //nolint:recvcheck //using for validation
	supplierID int64

	guard guard.ConstructorGuard
}

// NewGetOrdersBySupplierQuery creates a query to retrieve a supplier's orders.
func NewGetOrdersBySupplierQuery(supplierID int64) (GetOrdersBySupplierQuery, error) {
	query := GetOrdersBySupplierQuery{guard: guard.NewConstructorGuard()}

	if err := query.setSupplierID(supplierID); err != nil {
		return GetOrdersBySupplierQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersBySupplierQueryIsNotConstructed if validation fails.
func (q GetOrdersBySupplierQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersBySupplierQueryIsNotConstructed)
}

// SupplierID returns the identifier of the supplier to filter by.
func (q GetOrdersBySupplierQuery) SupplierID() int64 {
	return q.supplierID
}

func (q *GetOrdersBySupplierQuery) setSupplierID(supplierID int64) error {
	if supplierID <= 0 {
		return ErrSupplierIDIsInvalid
	}

	q.supplierID = supplierID
	return nil
}
