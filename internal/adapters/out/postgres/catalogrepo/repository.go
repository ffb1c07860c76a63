package catalogrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/supplier"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetBySupplier retrieves all catalog entries of one supplier.
func (r *GormCatalogRepository) GetBySupplier(ctx context.Context, supplierID int64) ([]*supplier.CatalogItem, error) {
	var dtos []CatalogItemDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "supplier_id = ?", supplierID).Error; err != nil {
		return nil, err
	}

	items := make([]*supplier.CatalogItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, toDomain(dto))
	}

	return items, nil
}

// GetBySupplierAndProduct retrieves one catalog entry. Absence is not an
// error: the caller distinguishes "not offered" from lookup failures, so a
// missing entry returns (nil, nil).
func (r *GormCatalogRepository) GetBySupplierAndProduct(
	ctx context.Context,
	supplierID, productID int64,
) (*supplier.CatalogItem, error) {
	var dto CatalogItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "supplier_id = ? AND product_id = ?", supplierID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto), nil
}
