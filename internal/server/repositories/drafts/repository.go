package drafts

import (
	"context"
	"encoding/json"

	"github.com/ledgerline/taxintake/internal/server/models"
)

type Repository interface {
	// FindCurrent returns the user's most-recently-updated draft, or
	// common.ErrorNotFound when the user has none.
	FindCurrent(ctx context.Context, userID string) (*models.Draft, error)

	// Create inserts a new draft row with status Draft and the given payload.
	Create(ctx context.Context, userID string, data json.RawMessage) (*models.Draft, error)

	// Persist replaces the data payload and refreshes updated_at. The update
	// is scoped to the owner, so a stale or foreign id changes nothing.
	Persist(ctx context.Context, id, userID string, data json.RawMessage) error

	// SetStatus updates the lifecycle tag of the user's draft.
	SetStatus(ctx context.Context, id, userID, status string) error

	// Get returns one draft by id, scoped to the owner.
	Get(ctx context.Context, id, userID string) (*models.Draft, error)
}
