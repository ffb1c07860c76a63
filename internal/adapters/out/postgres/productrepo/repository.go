package productrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/product"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// GetNameByID retrieves only the display name of a product.
func (r *GormProductRepository) GetNameByID(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Select("name").
		Where("id = ?", id).
		Take(&name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("product", id)
		}
		return "", err
	}

	return name, nil
}
