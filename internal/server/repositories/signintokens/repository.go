package signintokens

import (
	"context"

	"github.com/ledgerline/taxintake/internal/server/models"
)

// Repository stores single-use sign-in link tokens. A token row is removed
// the moment it is redeemed, so a link can never be replayed.
type Repository interface {
	Create(ctx context.Context, token *models.SignInToken) error
	Get(ctx context.Context, id string) (*models.SignInToken, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) error
}
