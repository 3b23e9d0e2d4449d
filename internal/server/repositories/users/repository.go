package users

import (
	"context"

	"github.com/ledgerline/taxintake/internal/server/models"
)

// Repository stores client accounts keyed by e-mail address.
type Repository interface {
	// FindOrCreate returns the user with the given e-mail, creating the
	// row when none exists yet.
	FindOrCreate(ctx context.Context, email string) (*models.User, error)
	// GetByEmail returns common.ErrorNotFound when no account exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
}
