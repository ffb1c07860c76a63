package orderrepo

import (
	"context"
	"database/sql"
	"errors"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// orderNumberLockID is the advisory-lock class used to serialize order-number
// issuance. Combined with the year it locks exactly one year's sequence.
const orderNumberLockID = 4217

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database and assigns the generated identifier
// to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if aggregate.ID() == 0 {
		if err := aggregate.AssignID(dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order sorted by identifier.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetBySupplier retrieves the orders placed with the given supplier.
func (r *GormOrderRepository) GetBySupplier(ctx context.Context, supplierID int64) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "supplier_id = ?", supplierID).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByStatus retrieves the orders currently in the given status.
func (r *GormOrderRepository) GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes an order row.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}

// NextOrderNumber issues the next order number for the given year.
//
// Must run inside an active transaction: it takes a transaction-scoped
// advisory lock on the year's sequence, so two concurrent transactions can
// never read the same maximum and issue duplicates. The lock is released
// automatically on commit or rollback. Numbers of rolled-back transactions
// are lost, leaving gaps, which is acceptable.
//
// Sequences are fixed-width 5 digits (order.NextNumber rejects issuing past
// 99999), so ORDER BY on the column finds the numeric maximum of the year.
func (r *GormOrderRepository) NextOrderNumber(ctx context.Context, year int) (string, error) {
	if err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?, ?)", orderNumberLockID, year).Error; err != nil {
		return "", err
	}

	var lastNumber string
	row := r.db.WithContext(ctx).Raw(`
		SELECT order_number
		FROM orders
		WHERE order_number LIKE ?
		ORDER BY order_number DESC
		LIMIT 1
	`, order.NumberPattern(year)).Row()

	if err := row.Scan(&lastNumber); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
		lastNumber = ""
	}

	return order.NextNumber(lastNumber, year)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
