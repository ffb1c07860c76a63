// Package lineitemrepo persists order line items. Amounts are stored for
// reporting queries but never trusted on load: the domain recomputes them
// from quantity, unit price, and tax rate.
package lineitemrepo

import (
	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// LineItemDTO represents the database structure for persisting order lines.
type LineItemDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	OrderID        int64 `gorm:"index"`
	ProductID      int64
	Quantity       int
	UnitPrice      decimal.Decimal `gorm:"type:numeric(18,4)"`
	TaxRatePercent decimal.Decimal `gorm:"type:numeric(5,2)"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(18,2)"`
	LineTotal      decimal.Decimal `gorm:"type:numeric(18,2)"`
}

// TableName specifies the database table name for line-item entities.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(line *order.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:             line.ID(),
		OrderID:        line.OrderID(),
		ProductID:      line.ProductID(),
		Quantity:       line.Quantity(),
		UnitPrice:      line.UnitPrice(),
		TaxRatePercent: line.TaxRatePercent(),
		Subtotal:       line.Subtotal(),
		LineTotal:      line.LineTotal(),
	}
}

func toDomain(dto LineItemDTO) (*order.LineItem, error) {
	return order.RestoreLineItem(
		dto.ID,
		dto.OrderID,
		dto.ProductID,
		dto.Quantity,
		dto.UnitPrice,
		dto.TaxRatePercent,
	)
}
