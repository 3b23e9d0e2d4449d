package files

import (
	"context"

	"github.com/ledgerline/taxintake/internal/server/models"
)

type Repository interface {
	// Create inserts a metadata row for already-stored bytes.
	Create(ctx context.Context, file *models.UploadedFile) (*models.UploadedFile, error)

	// ListByDraftCategory returns a draft's files in one category,
	// newest first.
	ListByDraftCategory(ctx context.Context, draftID, userID, category string) ([]*models.UploadedFile, error)

	// Get returns one file row by id, scoped to the owner.
	Get(ctx context.Context, id, userID string) (*models.UploadedFile, error)

	// Delete removes the metadata row. Callers must remove the stored
	// object first.
	Delete(ctx context.Context, id, userID string) error
}
