package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/filex"
	"github.com/ledgerline/taxintake/internal/intake"
	"github.com/ledgerline/taxintake/internal/server/models"
	"github.com/ledgerline/taxintake/internal/server/objstore"
	"github.com/ledgerline/taxintake/internal/server/repositories/repomanager"
)

// ObjectStore is the bucket interface the upload service needs. *objstore.S3Store
// satisfies it.
type ObjectStore interface {
	Bucket() string
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

// UploadService stores document uploads: bytes in the object store, metadata
// in the database. The object write happens first so a metadata row never
// points at a missing object; a delete removes the object first so a row is
// only dropped once the bytes are gone.
type UploadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       ObjectStore
}

func NewUploadService(db *sql.DB, m repomanager.RepositoryManager, store ObjectStore) *UploadService {
	return &UploadService{db: db, repomanager: m, store: store}
}

func (s *UploadService) editableDraft(ctx context.Context, draftID, userID string) error {
	draft, err := s.repomanager.Drafts(s.db).Get(ctx, draftID, userID)
	if err != nil {
		return err
	}
	if draft.Status == string(intake.StatusSubmitted) {
		return common.ErrLocked
	}
	return nil
}

// Upload stores one document under the draft's category prefix.
func (s *UploadService) Upload(ctx context.Context, userID, draftID, category, name, mimeType string, size int64, body io.Reader) (*models.UploadedFile, error) {
	if err := s.editableDraft(ctx, draftID, userID); err != nil {
		return nil, err
	}

	key := objstore.BuildKey(userID, draftID, category, name)
	contentType := filex.MimeOrDefault(mimeType)

	if err := s.store.Put(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("storage error: %w", err)
	}

	file, err := s.repomanager.Files(s.db).Create(ctx, &models.UploadedFile{
		DraftID:      draftID,
		UserID:       userID,
		Category:     category,
		Bucket:       s.store.Bucket(),
		StorageKey:   key,
		OriginalName: name,
		MimeType:     contentType,
		SizeBytes:    size,
	})
	if err != nil {
		return nil, fmt.Errorf("error storing file metadata: %w", err)
	}
	return file, nil
}

// List returns the draft's files in a category, newest first. Listing stays
// available after submission so clients can review what was filed.
func (s *UploadService) List(ctx context.Context, userID, draftID, category string) ([]*models.UploadedFile, error) {
	return s.repomanager.Files(s.db).ListByDraftCategory(ctx, draftID, userID, category)
}

// Delete removes the stored object and then its metadata row. When the object
// removal fails the row stays, so the file remains visible and the delete can
// be retried.
func (s *UploadService) Delete(ctx context.Context, userID, fileID string) error {
	repo := s.repomanager.Files(s.db)

	file, err := repo.Get(ctx, fileID, userID)
	if err != nil {
		return err
	}
	if err := s.editableDraft(ctx, file.DraftID, userID); err != nil {
		return err
	}

	if err := s.store.Remove(ctx, file.StorageKey); err != nil {
		return fmt.Errorf("storage error: %w", err)
	}
	return repo.Delete(ctx, fileID, userID)
}
