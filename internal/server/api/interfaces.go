package api

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ledgerline/taxintake/internal/server/models"
)

// AuthService issues and redeems sign-in links. *services.UserService satisfies it.
type AuthService interface {
	IssueSignInLink(ctx context.Context, email string) (string, error)
	ExchangeSignInLink(ctx context.Context, link string) (string, error)
}

// IntakeService owns draft lifecycle. *services.DraftService satisfies it.
type IntakeService interface {
	Current(ctx context.Context, userID string) (*models.Draft, error)
	Save(ctx context.Context, userID, draftID string, data json.RawMessage) error
	Submit(ctx context.Context, userID, draftID string, data json.RawMessage) error
}

// FileService owns document uploads. *services.UploadService satisfies it.
type FileService interface {
	Upload(ctx context.Context, userID, draftID, category, name, mimeType string, size int64, body io.Reader) (*models.UploadedFile, error)
	List(ctx context.Context, userID, draftID, category string) ([]*models.UploadedFile, error)
	Delete(ctx context.Context, userID, fileID string) error
}
