// Package drafts provides the PostgreSQL-backed repository for intake
// submission rows.
package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/dbx"
	"github.com/ledgerline/taxintake/internal/server/models"
)

// PostgresRepository implements draft storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindCurrent fetches the owner's most-recently-updated draft.
func (r *PostgresRepository) FindCurrent(ctx context.Context, userID string) (*models.Draft, error) {
	query := `SELECT id, user_id, status, data, updated_at FROM drafts
		WHERE user_id=$1
		ORDER BY updated_at DESC
		LIMIT 1
		`

	d := &models.Draft{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&d.ID, &d.UserID, &d.Status, &d.Data, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

// Create inserts a new draft row in status Draft.
func (r *PostgresRepository) Create(ctx context.Context, userID string, data json.RawMessage) (*models.Draft, error) {
	query := `INSERT INTO drafts (user_id, status, data)
		VALUES ($1, 'Draft', $2)
		RETURNING id, user_id, status, data, updated_at
		`

	d := &models.Draft{}
	err := r.db.QueryRowContext(ctx, query, userID, data).
		Scan(&d.ID, &d.UserID, &d.Status, &d.Data, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

// Persist replaces the payload of the owner's draft and refreshes updated_at.
// A replay with an identical payload is safe; only the timestamp moves.
func (r *PostgresRepository) Persist(ctx context.Context, id, userID string, data json.RawMessage) error {
	query := `UPDATE drafts SET data=$3, updated_at=now()
		WHERE id=$1 AND user_id=$2
		`

	res, err := r.db.ExecContext(ctx, query, id, userID, data)
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

// SetStatus updates the lifecycle tag of the owner's draft.
func (r *PostgresRepository) SetStatus(ctx context.Context, id, userID, status string) error {
	query := `UPDATE drafts SET status=$3, updated_at=now()
		WHERE id=$1 AND user_id=$2
		`

	res, err := r.db.ExecContext(ctx, query, id, userID, status)
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

// Get returns one draft by id, scoped to the owner.
func (r *PostgresRepository) Get(ctx context.Context, id, userID string) (*models.Draft, error) {
	query := `SELECT id, user_id, status, data, updated_at FROM drafts
		WHERE id=$1 AND user_id=$2
		`

	d := &models.Draft{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&d.ID, &d.UserID, &d.Status, &d.Data, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}
