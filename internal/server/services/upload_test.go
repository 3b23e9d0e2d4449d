package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/server/models"
)

func newUploadFixture(t *testing.T, status string) (*UploadService, *fakeFilesRepo, *fakeObjectStore) {
	t.Helper()
	files := &fakeFilesRepo{}
	store := newFakeObjectStore()
	rm := &fakeRepoManager{
		drafts: &fakeDraftsRepo{current: &models.Draft{ID: "d1", UserID: "u1", Status: status}},
		files:  files,
	}
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	return NewUploadService(db, rm, store), files, store
}

func TestUpload_PutsObjectThenCreatesRow(t *testing.T) {
	svc, files, store := newUploadFixture(t, "Draft")

	f, err := svc.Upload(context.Background(), "u1", "d1", "income", "w2 2025.pdf", "application/pdf", 1024, strings.NewReader("pdf-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ID != "f-new" {
		t.Fatalf("metadata row not created: %+v", f)
	}
	if f.Bucket != "intake" || f.OriginalName != "w2 2025.pdf" {
		t.Fatalf("unexpected metadata: %+v", f)
	}
	if !strings.Contains(f.StorageKey, "u1/d1/income/") || !strings.HasSuffix(f.StorageKey, "_w2_2025.pdf") {
		t.Fatalf("unexpected key: %q", f.StorageKey)
	}
	if string(store.puts[f.StorageKey]) != "pdf-bytes" {
		t.Fatalf("object bytes not stored")
	}
	if len(files.files) != 1 {
		t.Fatalf("want 1 row, got %d", len(files.files))
	}
}

func TestUpload_EmptyMimeFallsBackToOctetStream(t *testing.T) {
	svc, files, _ := newUploadFixture(t, "Draft")

	f, err := svc.Upload(context.Background(), "u1", "d1", "general", "notes", "", 3, strings.NewReader("txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.MimeType != "application/octet-stream" {
		t.Fatalf("unexpected mime: %q", f.MimeType)
	}
	_ = files
}

func TestUpload_StorageFailureLeavesNoRow(t *testing.T) {
	svc, files, store := newUploadFixture(t, "Draft")
	store.putErr = errors.New("bucket unreachable")

	_, err := svc.Upload(context.Background(), "u1", "d1", "income", "w2.pdf", "application/pdf", 10, strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "bucket unreachable") {
		t.Fatalf("want storage error, got %v", err)
	}
	if len(files.files) != 0 {
		t.Fatalf("metadata row created despite failed object write")
	}
}

func TestUpload_LockedDraftRejected(t *testing.T) {
	svc, files, store := newUploadFixture(t, "Submitted")

	_, err := svc.Upload(context.Background(), "u1", "d1", "income", "w2.pdf", "application/pdf", 10, strings.NewReader("x"))
	if !errors.Is(err, common.ErrLocked) {
		t.Fatalf("want ErrLocked, got %v", err)
	}
	if len(store.puts) != 0 || len(files.files) != 0 {
		t.Fatalf("locked draft accepted an upload")
	}
}

func TestDelete_RemovesObjectBeforeRow(t *testing.T) {
	svc, files, store := newUploadFixture(t, "Draft")
	files.files = []*models.UploadedFile{{ID: "f1", DraftID: "d1", UserID: "u1", StorageKey: "u1/d1/income/1_w2.pdf"}}

	if err := svc.Delete(context.Background(), "u1", "f1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.removed) != 1 || store.removed[0] != "u1/d1/income/1_w2.pdf" {
		t.Fatalf("object not removed: %v", store.removed)
	}
	if len(files.deleted) != 1 || files.deleted[0] != "f1" {
		t.Fatalf("row not deleted: %v", files.deleted)
	}
}

func TestDelete_StorageFailureKeepsRow(t *testing.T) {
	svc, files, store := newUploadFixture(t, "Draft")
	files.files = []*models.UploadedFile{{ID: "f1", DraftID: "d1", UserID: "u1", StorageKey: "k"}}
	store.removeErr = errors.New("remove failed")

	err := svc.Delete(context.Background(), "u1", "f1")
	if err == nil || !strings.Contains(err.Error(), "remove failed") {
		t.Fatalf("want storage error, got %v", err)
	}
	if len(files.deleted) != 0 {
		t.Fatalf("row deleted despite failed object removal")
	}
}

func TestDelete_UnknownFileNotFound(t *testing.T) {
	svc, _, _ := newUploadFixture(t, "Draft")

	if err := svc.Delete(context.Background(), "u1", "missing"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestDelete_LockedDraftRejected(t *testing.T) {
	svc, files, store := newUploadFixture(t, "Submitted")
	files.files = []*models.UploadedFile{{ID: "f1", DraftID: "d1", UserID: "u1", StorageKey: "k"}}

	if err := svc.Delete(context.Background(), "u1", "f1"); !errors.Is(err, common.ErrLocked) {
		t.Fatalf("want ErrLocked, got %v", err)
	}
	if len(store.removed) != 0 {
		t.Fatalf("object removed from locked draft")
	}
}

func TestList_AvailableWhileLocked(t *testing.T) {
	svc, files, _ := newUploadFixture(t, "Submitted")
	files.files = []*models.UploadedFile{{ID: "f1"}}

	list, err := svc.List(context.Background(), "u1", "d1", "income")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("want 1 file, got %d", len(list))
	}
}
