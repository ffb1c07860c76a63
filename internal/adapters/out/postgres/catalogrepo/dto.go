// Package catalogrepo provides read access to supplier catalogs: which
// products each supplier offers and at what price.
package catalogrepo

import (
	"procurement/internal/core/domain/model/supplier"

	"github.com/shopspring/decimal"
)

// CatalogItemDTO represents one product offered by one supplier.
// The (supplier, product) pair is unique.
type CatalogItemDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	SupplierID int64           `gorm:"uniqueIndex:idx_supplier_product"`
	ProductID  int64           `gorm:"uniqueIndex:idx_supplier_product"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(18,4)"`
	Active     bool
}

// TableName specifies the database table name for catalog entries.
func (CatalogItemDTO) TableName() string {
	return "supplier_catalog_items"
}

func toDomain(dto CatalogItemDTO) *supplier.CatalogItem {
	return &supplier.CatalogItem{
		ID:         dto.ID,
		SupplierID: dto.SupplierID,
		ProductID:  dto.ProductID,
		UnitPrice:  dto.UnitPrice,
		Active:     dto.Active,
	}
}
