package ports

import (
	"context"

	"procurement/internal/core/domain/model/user"
)

// UserRepository is the read-only lookup port for user records.
type UserRepository interface {
	// Get retrieves a user by internal id.
	// Returns an *errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByExternalUID resolves the external identity token subject to an
	// internal user record. Returns an *errs.ObjectNotFoundError when absent.
	GetByExternalUID(ctx context.Context, externalUID string) (*user.User, error)

	// GetFullNameByID retrieves only the user's display name.
	// Returns an *errs.ObjectNotFoundError when absent.
	GetFullNameByID(ctx context.Context, id int64) (string, error)
}
