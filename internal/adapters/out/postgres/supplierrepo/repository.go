package supplierrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GORM supplier repository.
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Get retrieves a supplier by ID.
func (r *GormSupplierRepository) Get(ctx context.Context, id int64) (*supplier.Supplier, error) {
	var dto SupplierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supplier", id)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// GetNameByID retrieves only the company name of a supplier.
func (r *GormSupplierRepository) GetNameByID(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Model(&SupplierDTO{}).
		Select("company_name").
		Where("id = ?", id).
		Take(&name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("supplier", id)
		}
		return "", err
	}

	return name, nil
}
