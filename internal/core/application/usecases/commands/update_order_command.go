package commands

import (
	"errors"

	"procurement/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

var ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")

// UpdateOrderCommand represents a request to modify an existing order.
// The status name is required and must be one of the six valid tokens;
// naming the current status keeps it unchanged. Delivery address and lines
// are optional: an empty value leaves that aspect of the order untouched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         int64
	statusName      string
	deliveryAddress string
	lines           []LineInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to modify an order.
// The order id must be positive; the status token is checked against the
// state machine by the handler.
func NewUpdateOrderCommand(
	orderID int64,
	statusName string,
	deliveryAddress string,
	lines []LineInput,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		statusName:      statusName,
		deliveryAddress: deliveryAddress,
		lines:           lines,
		guard:           guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// StatusName returns the requested status name.
func (c UpdateOrderCommand) StatusName() string {
	return c.statusName
}

// DeliveryAddress returns the new delivery address, empty when unchanged.
func (c UpdateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Lines returns the replacement line set, empty when lines are unchanged.
func (c UpdateOrderCommand) Lines() []LineInput {
	return c.lines
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
