// Package models defines server-side data models persisted in the database.
package models

import (
	"encoding/json"
	"time"
)

// Draft is one intake submission row. Data is the full intake record as an
// opaque JSON payload; the server never partially updates it; every persist
// replaces the whole document.
type Draft struct {
	// ID is the generated row id (uuid).
	ID string `json:"id"`
	// UserID is the owner of the draft.
	UserID string `json:"user_id"`
	// Status is the lifecycle tag ("Draft", "Submitted").
	Status string `json:"status"`
	// Data is the stored intake payload.
	Data json.RawMessage `json:"data"`
	// UpdatedAt is refreshed on every persist and orders drafts so the
	// most-recently-updated one is the user's current draft.
	UpdatedAt time.Time `json:"updated_at"`
}
