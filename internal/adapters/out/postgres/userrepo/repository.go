package userrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// GetByExternalUID retrieves a user by the identity assigned by the external
// authentication provider.
func (r *GormUserRepository) GetByExternalUID(ctx context.Context, uid string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "external_uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", uid)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// GetFullNameByID retrieves the display name of a user.
func (r *GormUserRepository) GetFullNameByID(ctx context.Context, id int64) (string, error) {
	u, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}

	return u.FullName(), nil
}
