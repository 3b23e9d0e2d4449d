package signintokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/dbx"
	"github.com/ledgerline/taxintake/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, token *models.SignInToken) error {
	query := `INSERT INTO signin_tokens (id, user_id, secret_hash, expires)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, token.ID, token.UserID, token.SecretHash, token.Expires)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.SignInToken, error) {
	query := `SELECT id, user_id, secret_hash, expires FROM signin_tokens WHERE id=$1`

	token := &models.SignInToken{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&token.ID, &token.UserID, &token.SecretHash, &token.Expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM signin_tokens WHERE id=$1`

	res, err := r.db.ExecContext(ctx, query, id)
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

func (r *PostgresRepository) DeleteExpired(ctx context.Context) error {
	query := `DELETE FROM signin_tokens WHERE expires < now()`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
