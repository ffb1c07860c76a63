// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by supplier and status.
type OrderDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	OrderNumber     string `gorm:"size:20;uniqueIndex"`
	SupplierID      int64  `gorm:"index"`
	UserID          int64
	CreatedAt       time.Time
	Status          int             `gorm:"index"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(18,2)"`
	TaxAmount       decimal.Decimal `gorm:"type:numeric(18,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(18,2)"`
	DeliveryAddress string          `gorm:"size:500"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID(),
		OrderNumber:     aggregate.OrderNumber(),
		SupplierID:      aggregate.SupplierID(),
		UserID:          aggregate.UserID(),
		CreatedAt:       aggregate.CreatedAt(),
		Status:          int(aggregate.Status()),
		Subtotal:        aggregate.Subtotal(),
		TaxAmount:       aggregate.TaxAmount(),
		Total:           aggregate.Total(),
		DeliveryAddress: aggregate.DeliveryAddress(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the aggregate including status and stored totals using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.OrderNumber,
		dto.SupplierID,
		dto.UserID,
		dto.CreatedAt,
		order.Status(dto.Status),
		dto.Subtotal,
		dto.TaxAmount,
		dto.Total,
		dto.DeliveryAddress,
	)
}
