package order

import (
	"errors"
	"fmt"

	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

var oneHundred = decimal.NewFromInt(100)

// LineItem represents one product line of an order: a product reference with
// quantity, unit price, and tax rate. Subtotal and line total are derived
// from those inputs on construction and are never set independently:
//
//	subtotal  = quantity × unitPrice
//	lineTotal = subtotal + subtotal × taxRatePercent / 100
//
// LineItems are owned exclusively by their Order and are destroyed with it.
type LineItem struct {
	id        int64
	orderID   int64
	productID int64

	// quantity of units ordered, always >= 1
	quantity int

	// unitPrice per unit at the time the order was placed, always > 0
	unitPrice decimal.Decimal

	// taxRatePercent applied to this line, in [0, 100]
	taxRatePercent decimal.Decimal

	subtotal  decimal.Decimal
	lineTotal decimal.Decimal

	isConstructed bool
}

// NewLineItem creates a line for the given order and product, validating
// quantity, unit price, and tax rate, and computing the derived amounts.
// The line id is assigned later by persistence via AssignID.
func NewLineItem(
	orderID, productID int64,
	quantity int,
	unitPrice, taxRatePercent decimal.Decimal,
) (*LineItem, error) {
	line := &LineItem{isConstructed: true}

	if err := errors.Join(
		line.setOrderID(orderID),
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
		line.setTaxRatePercent(taxRatePercent),
	); err != nil {
		return nil, err
	}

	line.computeAmounts()
	return line, nil
}

// RestoreLineItem reconstructs a persisted line. The derived amounts are
// recomputed from quantity, price, and tax rate rather than trusted from
// storage, keeping the derivation invariant even against hand-edited rows.
func RestoreLineItem(
	id, orderID, productID int64,
	quantity int,
	unitPrice, taxRatePercent decimal.Decimal,
) (*LineItem, error) {
	line, err := NewLineItem(orderID, productID, quantity, unitPrice, taxRatePercent)
	if err != nil {
		return nil, err
	}

	if err := line.AssignID(id); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the LineItem was created through a constructor.
func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// AssignID sets the persistence-assigned identifier. It can be set once.
func (l *LineItem) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("line item id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if l.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("line item id",
			fmt.Errorf("id is already assigned to %d", l.id))
	}

	l.id = id
	return nil
}

// ID returns the line's identifier, or 0 if not yet persisted.
func (l *LineItem) ID() int64 {
	return l.id
}

// OrderID returns the identifier of the owning order.
func (l *LineItem) OrderID() int64 {
	return l.orderID
}

// ProductID returns the identifier of the referenced product.
func (l *LineItem) ProductID() int64 {
	return l.productID
}

// Quantity returns the number of units ordered.
func (l *LineItem) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit.
func (l *LineItem) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// TaxRatePercent returns the tax rate applied to this line.
func (l *LineItem) TaxRatePercent() decimal.Decimal {
	return l.taxRatePercent
}

// Subtotal returns quantity × unitPrice, without tax.
func (l *LineItem) Subtotal() decimal.Decimal {
	return l.subtotal
}

// LineTotal returns the tax-inclusive total of the line.
func (l *LineItem) LineTotal() decimal.Decimal {
	return l.lineTotal
}

// TaxAmount returns the tax portion of the line total.
func (l *LineItem) TaxAmount() decimal.Decimal {
	return l.lineTotal.Sub(l.subtotal)
}

func (l *LineItem) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}
	l.orderID = orderID
	return nil
}

func (l *LineItem) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	l.productID = productID
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *LineItem) setTaxRatePercent(taxRatePercent decimal.Decimal) error {
	if taxRatePercent.IsNegative() || taxRatePercent.GreaterThan(oneHundred) {
		return errs.NewValueIsOutOfRangeError("tax rate percent", taxRatePercent.String(), 0, 100)
	}
	l.taxRatePercent = taxRatePercent
	return nil
}

// computeAmounts derives subtotal and line total from the inputs.
// Invoked whenever the inputs are set; amounts are never stored independently.
func (l *LineItem) computeAmounts() {
	l.subtotal = l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
	l.lineTotal = l.subtotal.Add(l.subtotal.Mul(l.taxRatePercent).Div(oneHundred))
}
