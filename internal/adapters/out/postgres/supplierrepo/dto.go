// Package supplierrepo provides read access to supplier master data.
// Supplier records are maintained by a separate back-office flow; the order
// service only reads them.
package supplierrepo

import (
	"procurement/internal/core/domain/model/supplier"
)

// SupplierDTO represents the database structure of supplier master data.
type SupplierDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	CompanyName string `gorm:"size:200"`
	TaxID       string `gorm:"size:20;uniqueIndex"`
	Address     string `gorm:"size:500"`
	City        string `gorm:"size:100"`
	Province    string `gorm:"size:100"`
	PostalCode  string `gorm:"size:10"`
	Phone       string `gorm:"size:20"`
	Email       string `gorm:"size:200"`
	Active      bool
}

// TableName specifies the database table name for supplier entities.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

func toDomain(dto SupplierDTO) *supplier.Supplier {
	return &supplier.Supplier{
		ID:          dto.ID,
		CompanyName: dto.CompanyName,
		TaxID:       dto.TaxID,
		Address:     dto.Address,
		City:        dto.City,
		Province:    dto.Province,
		PostalCode:  dto.PostalCode,
		Phone:       dto.Phone,
		Email:       dto.Email,
		Active:      dto.Active,
	}
}
