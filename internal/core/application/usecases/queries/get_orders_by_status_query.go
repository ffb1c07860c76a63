package queries

import (
	"errors"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves the orders currently in one status.
// The status name is parsed case-insensitively; an unrecognized name fails
// at construction with an error listing the allowed values.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query to retrieve orders by status name.
func NewGetOrdersByStatusQuery(statusName string) (GetOrdersByStatusQuery, error) {
	query := GetOrdersByStatusQuery{guard: guard.NewConstructorGuard()}

	if err := query.setStatus(statusName); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the parsed status to filter by.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q *GetOrdersByStatusQuery) setStatus(statusName string) error {
	status, err := order.StatusFromName(statusName)
	if err != nil {
		return err
	}

	q.status = status
	return nil
}
