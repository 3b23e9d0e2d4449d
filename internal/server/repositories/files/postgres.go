// Package files provides the PostgreSQL-backed repository for uploaded-file
// metadata rows.
package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/dbx"
	"github.com/ledgerline/taxintake/internal/server/models"
)

// PostgresRepository implements file metadata storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, file *models.UploadedFile) (*models.UploadedFile, error) {
	query := `INSERT INTO uploaded_files
			(draft_id, user_id, category, bucket, storage_key, original_name, mime_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
		`

	err := r.db.QueryRowContext(ctx, query,
		file.DraftID, file.UserID, file.Category, file.Bucket, file.StorageKey,
		file.OriginalName, file.MimeType, file.SizeBytes).
		Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

// ListByDraftCategory returns the draft's files in a category, newest first.
func (r *PostgresRepository) ListByDraftCategory(ctx context.Context, draftID, userID, category string) ([]*models.UploadedFile, error) {
	query := `SELECT id, draft_id, user_id, category, bucket, storage_key,
			original_name, mime_type, size_bytes, created_at
		FROM uploaded_files
		WHERE draft_id=$1 AND user_id=$2 AND category=$3
		ORDER BY created_at DESC
		`

	rows, err := r.db.QueryContext(ctx, query, draftID, userID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []*models.UploadedFile
	for rows.Next() {
		var item models.UploadedFile
		if err := rows.Scan(
			&item.ID, &item.DraftID, &item.UserID, &item.Category, &item.Bucket,
			&item.StorageKey, &item.OriginalName, &item.MimeType, &item.SizeBytes,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (*models.UploadedFile, error) {
	query := `SELECT id, draft_id, user_id, category, bucket, storage_key,
			original_name, mime_type, size_bytes, created_at
		FROM uploaded_files
		WHERE id=$1 AND user_id=$2
		`

	item := &models.UploadedFile{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&item.ID, &item.DraftID, &item.UserID, &item.Category, &item.Bucket,
		&item.StorageKey, &item.OriginalName, &item.MimeType, &item.SizeBytes,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM uploaded_files WHERE id=$1 AND user_id=$2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
