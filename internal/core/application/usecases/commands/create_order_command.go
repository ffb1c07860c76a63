package commands

import (
	"errors"

	"procurement/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrSupplierIDIsInvalid     = errors.New("supplier id must be greater than 0")
	ErrCallerUIDIsRequired     = errors.New("caller uid is required")
	ErrDeliveryAddressTooShort = errors.New("delivery address must be at least 5 characters")
	ErrDeliveryAddressTooLong  = errors.New("delivery address must be at most 500 characters")
)

const (
	minDeliveryAddressLength = 5
	maxDeliveryAddressLength = 500
)

// CreateOrderCommand represents a request to register a new purchase order
// for a supplier on behalf of the authenticated caller.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(supplierID, callerUID, "Warehouse 4, Dock B", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	detail, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", detail.OrderNumber)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	supplierID      int64
	callerUID       string
	deliveryAddress string
	lines           []LineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Validates supplier id, caller identity, and delivery address bounds.
// Line-level rules are enforced by the handler against the catalog.
func NewCreateOrderCommand(
	supplierID int64,
	callerUID string,
	deliveryAddress string,
	lines []LineInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		lines: lines,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setSupplierID(supplierID),
		orderCommand.setCallerUID(callerUID),
		orderCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// SupplierID returns the identifier of the supplier the order is placed with.
func (c CreateOrderCommand) SupplierID() int64 {
	return c.supplierID
}

// CallerUID returns the external identity of the user placing the order.
func (c CreateOrderCommand) CallerUID() string {
	return c.callerUID
}

// DeliveryAddress returns the address the order should be delivered to.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Lines returns the submitted order lines.
func (c CreateOrderCommand) Lines() []LineInput {
	return c.lines
}

func (c *CreateOrderCommand) setSupplierID(supplierID int64) error {
	if supplierID <= 0 {
		return ErrSupplierIDIsInvalid
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateOrderCommand) setCallerUID(callerUID string) error {
	if callerUID == "" {
		return ErrCallerUIDIsRequired
	}

	c.callerUID = callerUID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if len(deliveryAddress) < minDeliveryAddressLength {
		return ErrDeliveryAddressTooShort
	}
	if len(deliveryAddress) > maxDeliveryAddressLength {
		return ErrDeliveryAddressTooLong
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
