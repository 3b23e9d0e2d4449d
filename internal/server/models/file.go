package models

import "time"

// UploadedFile describes one stored client document. The object in storage
// and this row form a single logical unit: deletion removes the object first
// and the row second, so a row never outlives its object.
type UploadedFile struct {
	// ID is the generated row id (uuid).
	ID string `json:"id"`
	// DraftID links the file to its intake submission.
	DraftID string `json:"draft_id"`
	// UserID is the owner of the file.
	UserID string `json:"user_id"`
	// Category partitions files by form section (id, income, deductions,
	// credits, general).
	Category string `json:"category"`
	// Bucket and StorageKey locate the bytes in object storage.
	Bucket     string `json:"bucket"`
	StorageKey string `json:"storage_key"`
	// OriginalName is the filename as picked by the client.
	OriginalName string `json:"original_name"`
	// MimeType is the reported content type, defaulted when absent.
	MimeType string `json:"mime_type"`
	// SizeBytes is the byte size of the stored object.
	SizeBytes int64 `json:"size_bytes"`
	// CreatedAt orders listings newest-first.
	CreatedAt time.Time `json:"created_at"`
}
