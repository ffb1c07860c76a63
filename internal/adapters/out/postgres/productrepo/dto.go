// Package productrepo provides read access to product master data.
package productrepo

import (
	"procurement/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure of product master data.
type ProductDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Code         string `gorm:"size:50;uniqueIndex"`
	Name         string `gorm:"size:200"`
	Description  string `gorm:"size:1000"`
	Category     string `gorm:"size:100"`
	UnitOfSale   string `gorm:"size:50"`
	Price        decimal.Decimal `gorm:"type:numeric(18,4)"`
	CurrentStock int
	Active       bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) *product.Product {
	return &product.Product{
		ID:           dto.ID,
		Code:         dto.Code,
		Name:         dto.Name,
		Description:  dto.Description,
		Category:     dto.Category,
		UnitOfSale:   dto.UnitOfSale,
		Price:        dto.Price,
		CurrentStock: dto.CurrentStock,
		Active:       dto.Active,
	}
}
