package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/dbx"
	"github.com/ledgerline/taxintake/internal/intake"
	"github.com/ledgerline/taxintake/internal/server/models"
	"github.com/ledgerline/taxintake/internal/server/repositories/repomanager"
)

// DraftService owns the lifecycle of intake drafts: find-or-create on first
// load, autosave persistence, and the one-way transition to Submitted.
type DraftService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDraftService(db *sql.DB, m repomanager.RepositoryManager) *DraftService {
	return &DraftService{db: db, repomanager: m}
}

// Current returns the user's active draft, creating one seeded with the
// default record when the user has none yet.
func (s *DraftService) Current(ctx context.Context, userID string) (*models.Draft, error) {
	repo := s.repomanager.Drafts(s.db)

	draft, err := repo.FindCurrent(ctx, userID)
	if err == nil {
		return draft, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error loading draft: %w", err)
	}

	seed, err := json.Marshal(intake.DefaultRecord())
	if err != nil {
		return nil, fmt.Errorf("error encoding default record: %w", err)
	}
	created, err := repo.Create(ctx, userID, seed)
	if err != nil {
		return nil, fmt.Errorf("error creating draft: %w", err)
	}
	return created, nil
}

// Save normalizes the payload against the record schema and persists it.
// Submitted drafts reject further writes with ErrLocked.
func (s *DraftService) Save(ctx context.Context, userID, draftID string, data json.RawMessage) error {
	repo := s.repomanager.Drafts(s.db)

	draft, err := repo.Get(ctx, draftID, userID)
	if err != nil {
		return err
	}
	if draft.Status == string(intake.StatusSubmitted) {
		return common.ErrLocked
	}

	normalized, err := json.Marshal(intake.Reconcile(data))
	if err != nil {
		return fmt.Errorf("error encoding record: %w", err)
	}
	return repo.Persist(ctx, draftID, userID, normalized)
}

// Submit stores the final payload and flips the draft to Submitted in one
// transaction. The consent section must be complete.
func (s *DraftService) Submit(ctx context.Context, userID, draftID string, data json.RawMessage) error {
	repo := s.repomanager.Drafts(s.db)

	draft, err := repo.Get(ctx, draftID, userID)
	if err != nil {
		return err
	}
	if draft.Status == string(intake.StatusSubmitted) {
		return common.ErrLocked
	}

	// An empty body submits the payload as last autosaved.
	if len(bytes.TrimSpace(data)) == 0 {
		data = draft.Data
	}

	rec := intake.Reconcile(data)
	if !rec.ConsentComplete() {
		return common.ErrConsentIncomplete
	}

	normalized, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("error encoding record: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Drafts(tx)
		if err := repoTx.Persist(ctx, draftID, userID, normalized); err != nil {
			return fmt.Errorf("error persisting record: %w", err)
		}
		return repoTx.SetStatus(ctx, draftID, userID, string(intake.StatusSubmitted))
	})
}
