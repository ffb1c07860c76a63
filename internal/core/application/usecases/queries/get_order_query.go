package queries

import (
	"errors"

	"procurement/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderQuery retrieves one order with its lines and resolved names.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order by identifier.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	query := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	q.orderID = orderID
	return nil
}
