package lineitemrepo

import (
	"context"

	"procurement/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormLineItemRepository implements LineItemRepository using GORM.
type GormLineItemRepository struct {
	db *gorm.DB
}

// NewGormLineItemRepository creates a new GORM line-item repository.
func NewGormLineItemRepository(db *gorm.DB) *GormLineItemRepository {
	return &GormLineItemRepository{db: db}
}

// Add saves a new line item and assigns the generated identifier.
func (r *GormLineItemRepository) Add(ctx context.Context, line *order.LineItem) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if line.ID() == 0 {
		if err := line.AssignID(dto.ID); err != nil {
			return err
		}
	}

	return nil
}

// GetByOrderID retrieves the lines of one order sorted by identifier.
func (r *GormLineItemRepository) GetByOrderID(ctx context.Context, orderID int64) ([]*order.LineItem, error) {
	var dtos []LineItemDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}

	lines := make([]*order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// DeleteByOrderID removes all lines of one order. Deleting zero rows is not
// an error.
func (r *GormLineItemRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Delete(&LineItemDTO{}, "order_id = ?", orderID).Error
}
