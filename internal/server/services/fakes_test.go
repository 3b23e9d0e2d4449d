package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"testing"

	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/dbx"
	"github.com/ledgerline/taxintake/internal/server/models"
	draftsrepo "github.com/ledgerline/taxintake/internal/server/repositories/drafts"
	filesrepo "github.com/ledgerline/taxintake/internal/server/repositories/files"
	tokensrepo "github.com/ledgerline/taxintake/internal/server/repositories/signintokens"
	usersrepo "github.com/ledgerline/taxintake/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	user *models.User
	err  error
}

func (f *fakeUsersRepo) FindOrCreate(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}
func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}
func (f *fakeUsersRepo) Get(ctx context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeTokensRepo struct {
	tokens    map[string]*models.SignInToken
	createErr error
}

func newFakeTokensRepo() *fakeTokensRepo {
	return &fakeTokensRepo{tokens: map[string]*models.SignInToken{}}
}

func (f *fakeTokensRepo) Create(ctx context.Context, token *models.SignInToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token.ID] = token
	return nil
}
func (f *fakeTokensRepo) Get(ctx context.Context, id string) (*models.SignInToken, error) {
	tok, ok := f.tokens[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return tok, nil
}
func (f *fakeTokensRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.tokens[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.tokens, id)
	return nil
}
func (f *fakeTokensRepo) DeleteExpired(ctx context.Context) error {
	for id, tok := range f.tokens {
		if tok.Expires.Before(time.Now()) {
			delete(f.tokens, id)
		}
	}
	return nil
}

type fakeDraftsRepo struct {
	current    *models.Draft
	currentErr error

	created   *models.Draft
	createErr error

	persisted  []json.RawMessage
	persistErr error

	statuses []string
}

func (f *fakeDraftsRepo) FindCurrent(ctx context.Context, userID string) (*models.Draft, error) {
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return f.current, nil
}
func (f *fakeDraftsRepo) Create(ctx context.Context, userID string, data json.RawMessage) (*models.Draft, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &models.Draft{ID: "d-new", UserID: userID, Status: "Draft", Data: data}
	return f.created, nil
}
func (f *fakeDraftsRepo) Persist(ctx context.Context, id, userID string, data json.RawMessage) error {
	if f.persistErr != nil {
		return f.persistErr
	}
	f.persisted = append(f.persisted, data)
	return nil
}
func (f *fakeDraftsRepo) SetStatus(ctx context.Context, id, userID, status string) error {
	f.statuses = append(f.statuses, status)
	return nil
}
func (f *fakeDraftsRepo) Get(ctx context.Context, id, userID string) (*models.Draft, error) {
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return f.current, nil
}

type fakeFilesRepo struct {
	files     []*models.UploadedFile
	createErr error
	deleted   []string
}

func (f *fakeFilesRepo) Create(ctx context.Context, file *models.UploadedFile) (*models.UploadedFile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	file.ID = "f-new"
	f.files = append(f.files, file)
	return file, nil
}
func (f *fakeFilesRepo) ListByDraftCategory(ctx context.Context, draftID, userID, category string) ([]*models.UploadedFile, error) {
	return f.files, nil
}
func (f *fakeFilesRepo) Get(ctx context.Context, id, userID string) (*models.UploadedFile, error) {
	for _, file := range f.files {
		if file.ID == id {
			return file, nil
		}
	}
	return nil, common.ErrorNotFound
}
func (f *fakeFilesRepo) Delete(ctx context.Context, id, userID string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRepoManager struct {
	users  *fakeUsersRepo
	tokens *fakeTokensRepo
	drafts *fakeDraftsRepo
	files  *fakeFilesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.users }
func (m *fakeRepoManager) SignInTokens(db dbx.DBTX) tokensrepo.Repository {
	return m.tokens
}
func (m *fakeRepoManager) Drafts(db dbx.DBTX) draftsrepo.Repository { return m.drafts }
func (m *fakeRepoManager) Files(db dbx.DBTX) filesrepo.Repository   { return m.files }

type fakeObjectStore struct {
	puts      map[string][]byte
	putErr    error
	removed   []string
	removeErr error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{puts: map[string][]byte{}}
}

func (f *fakeObjectStore) Bucket() string { return "intake" }
func (f *fakeObjectStore) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	if f.putErr != nil {
		return f.putErr
	}
	b, _ := io.ReadAll(body)
	f.puts[key] = b
	return nil
}
func (f *fakeObjectStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	b, ok := f.puts[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}
func (f *fakeObjectStore) Remove(ctx context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, key)
	return nil
}
