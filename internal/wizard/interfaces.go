// Package wizard implements the intake wizard: an ordered sequence of form
// steps over a single draft record, with per-step validation gates, debounced
// autosave, and a lock once the draft is submitted.
//
// The controller talks to the backend only through the DraftStore and
// UploadStore interfaces, so it can run against the HTTP client adapters or
// against fakes in tests.
package wizard

import (
	"context"
	"io"
	"time"

	"github.com/ledgerline/taxintake/internal/intake"
)

// Category partitions uploaded files by form section.
type Category string

const (
	CategoryID         Category = "id"
	CategoryIncome     Category = "income"
	CategoryDeductions Category = "deductions"
	CategoryCredits    Category = "credits"
	CategoryGeneral    Category = "general"
)

// Draft is one stored intake submission as seen by the controller. Data is
// the raw stored JSON payload; the controller runs it through
// intake.Reconcile, so rows written by older schema versions load cleanly.
type Draft struct {
	ID     string
	Status intake.Status
	Data   []byte
}

// StoredFile is the metadata of one uploaded document.
type StoredFile struct {
	ID           string
	DraftID      string
	Category     Category
	OriginalName string
	MimeType     string
	SizeBytes    int64
	CreatedAt    time.Time
}

// FileInput carries one file selected for upload.
type FileInput struct {
	Name     string
	MimeType string
	Size     int64
	Body     io.Reader
}

// DraftStore is the draft persistence boundary. Implementations are already
// scoped to the authenticated user. Errors are surfaced to the caller
// verbatim; no store method retries.
type DraftStore interface {
	// FindCurrent returns the user's most-recently-updated draft, or
	// common.ErrorNotFound when the user has none.
	FindCurrent(ctx context.Context) (*Draft, error)

	// Create inserts a new draft with status Draft and the default record.
	Create(ctx context.Context) (*Draft, error)

	// Persist replaces the stored record payload and refreshes the
	// updated-at timestamp. Idempotent: replaying the same payload is safe.
	Persist(ctx context.Context, draftID string, rec intake.Record) error

	// Submit sets the draft's status to Submitted.
	Submit(ctx context.Context, draftID string) error
}

// UploadStore is the document storage boundary, scoped by draft and category.
//
// The store does not re-check the draft's status: the post-submit lock is
// cooperative and enforced by the controller only.
type UploadStore interface {
	// List returns the draft's files in a category, newest first.
	List(ctx context.Context, draftID string, category Category) ([]StoredFile, error)

	// Upload stores one file's bytes and then its metadata row. A failure at
	// either stage aborts the operation; a row is never written for bytes
	// that failed to land.
	Upload(ctx context.Context, draftID string, category Category, file FileInput) (*StoredFile, error)

	// Delete removes the stored bytes first and the metadata row second.
	// When the bytes removal fails, the row must be kept.
	Delete(ctx context.Context, file StoredFile) error
}
