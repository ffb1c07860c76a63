package order

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

const (
	minAddressLength = 5
	maxAddressLength = 500
)

// Order represents a procurement order placed with an external supplier.
// It is the aggregate root that owns the ordered collection of LineItems
// and manages the order lifecycle through the status state machine.
//
// Order follows these invariants:
//   - The order number is immutable after creation and matches PED-YYYY-NNNNN
//   - Status transitions follow the table defined in status.go
//   - Lines may only be replaced while the order is Pending
//   - Subtotal, tax amount, and total are derived from the lines and always
//     satisfy total = subtotal + taxAmount
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the persistence-assigned identifier (0 until persisted)
	id int64

	// orderNumber is the year-scoped human-readable unique identifier
	orderNumber string

	// supplierID and userID are references to externally owned entities
	supplierID int64
	userID     int64

	// createdAt is set at creation and immutable
	createdAt time.Time

	// status is the current state in the order lifecycle
	status Status

	// deliveryAddress is a non-empty string of 5 to 500 characters
	deliveryAddress string

	// monetary totals, derived from lines by RecomputeTotals
	subtotal  decimal.Decimal
	taxAmount decimal.Decimal
	total     decimal.Decimal

	// lines is the ordered collection of LineItems owned by this order
	lines []*LineItem

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with zero lines and zero
// totals. The order number must have been issued by the sequence generator.
// The id is assigned later by persistence via AssignID.
func NewOrder(orderNumber string, supplierID, userID int64, deliveryAddress string) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		subtotal:      decimal.Zero,
		taxAmount:     decimal.Zero,
		total:         decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setOrderNumber(orderNumber),
		o.setSupplierID(supplierID),
		o.setUserID(userID),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs a persisted order, including its stored status
// and totals. The status fails fast on anything outside the six named
// states rather than defaulting.
func RestoreOrder(
	id int64,
	orderNumber string,
	supplierID, userID int64,
	createdAt time.Time,
	status Status,
	subtotal, taxAmount, total decimal.Decimal,
	deliveryAddress string,
) (*Order, error) {
	o, err := NewOrder(orderNumber, supplierID, userID, deliveryAddress)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		o.AssignID(id),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.createdAt = createdAt
	o.status = status
	o.subtotal = subtotal
	o.taxAmount = taxAmount
	o.total = total
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// AssignID sets the persistence-assigned identifier. It can be set once.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("id is already assigned to %d", o.id))
	}

	o.id = id
	return nil
}

// ID returns the order's identifier, or 0 if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// OrderNumber returns the year-scoped unique order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// SupplierID returns the referenced supplier's identifier.
func (o *Order) SupplierID() int64 {
	return o.supplierID
}

// UserID returns the identifier of the user who created the order.
func (o *Order) UserID() int64 {
	return o.userID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Subtotal returns the sum of all line subtotals, without tax.
func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

// TaxAmount returns the total tax of the order.
func (o *Order) TaxAmount() decimal.Decimal {
	return o.taxAmount
}

// Total returns subtotal plus tax amount.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Lines returns the order's line items. The returned slice is a copy; the
// lines themselves are the aggregate's own.
func (o *Order) Lines() []*LineItem {
	lines := make([]*LineItem, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// ChangeStatus transitions the order to the given status.
//
// Returns an *errs.InvalidStateTransitionError if the transition table does
// not permit moving from the current status to the requested one. Requesting
// the current status again is not a transition and is rejected the same way;
// callers that want no-op semantics check for equality first.
func (o *Order) ChangeStatus(to Status) error {
	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CanEditLines reports whether the order's lines may be replaced.
// Only Pending orders permit line edits.
func (o *Order) CanEditLines() bool {
	return o.status == Pending
}

// CanDelete reports whether the order may be deleted.
// Only Pending orders may be deleted.
func (o *Order) CanDelete() bool {
	return o.status == Pending
}

// SetDeliveryAddress replaces the delivery address, enforcing the 5 to 500
// character rule.
func (o *Order) SetDeliveryAddress(address string) error {
	return o.setDeliveryAddress(address)
}

// ReplaceLines wholesale-replaces the order's lines and recomputes the
// totals. Fails when the order is not Pending or when any line belongs to a
// different order.
func (o *Order) ReplaceLines(lines []*LineItem) error {
	if !o.CanEditLines() {
		return errs.NewBusinessRuleError(
			fmt.Sprintf("lines of an order in status '%s' cannot be modified. "+
				"Only orders in status '%s' permit line edits", o.status, Pending),
			errs.CodeLinesLocked,
		)
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if o.id != 0 && line.OrderID() != o.id {
			return errs.NewValueIsInvalidErrorWithCause("line item",
				fmt.Errorf("line belongs to order %d, not %d", line.OrderID(), o.id))
		}
	}

	o.lines = make([]*LineItem, len(lines))
	copy(o.lines, lines)
	o.RecomputeTotals()
	return nil
}

// RecomputeTotals derives the order totals from the current lines:
//
//	subtotal  = Σ line.subtotal        (0 if no lines)
//	taxAmount = Σ (line.lineTotal - line.subtotal)
//	total     = subtotal + taxAmount
//
// Must be invoked after any line replacement; ReplaceLines does so.
func (o *Order) RecomputeTotals() {
	subtotal := decimal.Zero
	taxAmount := decimal.Zero

	for _, line := range o.lines {
		subtotal = subtotal.Add(line.Subtotal())
		taxAmount = taxAmount.Add(line.TaxAmount())
	}

	o.subtotal = subtotal
	o.taxAmount = taxAmount
	o.total = subtotal.Add(taxAmount)
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if _, _, err := ParseNumber(orderNumber); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setSupplierID(supplierID int64) error {
	if supplierID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("supplier id",
			fmt.Errorf("%d is not greater than 0", supplierID))
	}
	o.supplierID = supplierID
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user id",
			fmt.Errorf("%d is not greater than 0", userID))
	}
	o.userID = userID
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if len(address) < minAddressLength || len(address) > maxAddressLength {
		return errs.NewValueIsOutOfRangeError("delivery address length",
			len(address), minAddressLength, maxAddressLength)
	}
	o.deliveryAddress = address
	return nil
}
