package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/ledgerline/taxintake/internal/intake"
	"github.com/ledgerline/taxintake/internal/wizard"
)

// draftDTO mirrors the server's draft representation.
type draftDTO struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (d *draftDTO) toDraft() *wizard.Draft {
	return &wizard.Draft{
		ID:     d.ID,
		Status: intake.Status(d.Status),
		Data:   d.Data,
	}
}

// DraftStore implements wizard.DraftStore over the HTTP API.
type DraftStore struct {
	client *Client
}

func NewDraftStore(client *Client) *DraftStore {
	return &DraftStore{client: client}
}

// FindCurrent returns the caller's active draft. The server creates one on
// first load, so this never reports not-found for an authenticated user.
func (s *DraftStore) FindCurrent(ctx context.Context) (*wizard.Draft, error) {
	var dto draftDTO
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/intake", nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDraft(), nil
}

// Create is the same call as FindCurrent: the find-or-create decision lives
// server-side.
func (s *DraftStore) Create(ctx context.Context) (*wizard.Draft, error) {
	return s.FindCurrent(ctx)
}

func (s *DraftStore) Persist(ctx context.Context, draftID string, rec intake.Record) error {
	return s.client.doJSON(ctx, http.MethodPut, "/api/intake/"+url.PathEscape(draftID), rec, nil)
}

// Submit finalizes the draft server-side using the last persisted payload.
func (s *DraftStore) Submit(ctx context.Context, draftID string) error {
	return s.client.doJSON(ctx, http.MethodPost, "/api/intake/"+url.PathEscape(draftID)+"/submit", nil, nil)
}
