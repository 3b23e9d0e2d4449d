package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/logging"
	"github.com/ledgerline/taxintake/internal/server/auth"
	"github.com/ledgerline/taxintake/internal/server/models"
)

var testSecret = []byte("test-secret")

type fakeAuthService struct {
	link     string
	token    string
	issueErr error
	exchErr  error
}

func (f *fakeAuthService) IssueSignInLink(ctx context.Context, email string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return f.link, nil
}
func (f *fakeAuthService) ExchangeSignInLink(ctx context.Context, link string) (string, error) {
	if f.exchErr != nil {
		return "", f.exchErr
	}
	return f.token, nil
}

type fakeIntakeService struct {
	draft     *models.Draft
	saveErr   error
	submitErr error
	saved     []json.RawMessage
	submitted bool
}

func (f *fakeIntakeService) Current(ctx context.Context, userID string) (*models.Draft, error) {
	return f.draft, nil
}
func (f *fakeIntakeService) Save(ctx context.Context, userID, draftID string, data json.RawMessage) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, data)
	return nil
}
func (f *fakeIntakeService) Submit(ctx context.Context, userID, draftID string, data json.RawMessage) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = true
	return nil
}

type fakeFileService struct {
	files     []*models.UploadedFile
	uploadErr error
	deleteErr error
	uploaded  *models.UploadedFile
}

func (f *fakeFileService) Upload(ctx context.Context, userID, draftID, category, name, mimeType string, size int64, body io.Reader) (*models.UploadedFile, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploaded = &models.UploadedFile{ID: "f1", DraftID: draftID, UserID: userID, Category: category, OriginalName: name, MimeType: mimeType, SizeBytes: size}
	return f.uploaded, nil
}
func (f *fakeFileService) List(ctx context.Context, userID, draftID, category string) ([]*models.UploadedFile, error) {
	return f.files, nil
}
func (f *fakeFileService) Delete(ctx context.Context, userID, fileID string) error {
	return f.deleteErr
}

type testServer struct {
	e      *echo.Echo
	auth   *fakeAuthService
	intake *fakeIntakeService
	files  *fakeFileService
}

func newTestServer(t *testing.T, formsDir string) *testServer {
	t.Helper()
	ts := &testServer{
		e:      echo.New(),
		auth:   &fakeAuthService{link: "id.secret", token: "jwt"},
		intake: &fakeIntakeService{draft: &models.Draft{ID: "d1", UserID: "u1", Status: "Draft", Data: json.RawMessage(`{}`)}},
		files:  &fakeFileService{},
	}
	handlers := NewHandlers(&Dependencies{
		Auth:      ts.auth,
		Intake:    ts.intake,
		Files:     ts.files,
		SecretKey: testSecret,
		FormsDir:  formsDir,
		Log:       logging.NewJSON(io.Discard),
	})
	RegisterRoutes(ts.e, handlers, testSecret)
	return ts
}

func bearerToken(t *testing.T) string {
	t.Helper()
	tok, err := auth.GenerateToken("u1", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return "Bearer " + tok
}

func doJSON(ts *testServer, method, path, token string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func TestIssueLink_ReturnsLink(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	rec := doJSON(ts, http.MethodPost, "/api/auth/link", "", `{"email":"ada@example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body)
	}
	var resp issueLinkResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Link != "id.secret" {
		t.Fatalf("unexpected link: %q", resp.Link)
	}
}

func TestIssueLink_InvalidEmail(t *testing.T) {
	ts := newTestServer(t, t.TempDir())
	ts.auth.issueErr = common.ErrInvalidEmail

	rec := doJSON(ts, http.MethodPost, "/api/auth/link", "", `{"email":"nope"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestExchangeLink_InvalidLinkUnauthorized(t *testing.T) {
	ts := newTestServer(t, t.TempDir())
	ts.auth.exchErr = common.ErrInvalidToken

	rec := doJSON(ts, http.MethodPost, "/api/auth/session", "", `{"link":"bad"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
	var apiErr APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &apiErr); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if apiErr.Code != "UNAUTHORIZED" {
		t.Fatalf("unexpected code: %q", apiErr.Code)
	}
}

func TestIntakeRoutes_RequireAuth(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/intake"},
		{http.MethodPut, "/api/intake/d1"},
		{http.MethodPost, "/api/intake/d1/submit"},
		{http.MethodGet, "/api/intake/d1/files?category=income"},
		{http.MethodDelete, "/api/files/f1"},
	} {
		rec := doJSON(ts, tc.method, tc.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: want 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestIntakeRoutes_RejectExpiredToken(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	tok, err := auth.GenerateToken("u1", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	rec := doJSON(ts, http.MethodGet, "/api/intake", "Bearer "+tok, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestHandleCurrent_ReturnsDraft(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	rec := doJSON(ts, http.MethodGet, "/api/intake", bearerToken(t), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body)
	}
	var draft models.Draft
	if err := json.Unmarshal(rec.Body.Bytes(), &draft); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if draft.ID != "d1" {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}

func TestHandleSave_PersistsBody(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	rec := doJSON(ts, http.MethodPut, "/api/intake/d1", bearerToken(t), `{"legal_name":"Ada"}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d: %s", rec.Code, rec.Body)
	}
	if len(ts.intake.saved) != 1 || !bytes.Contains(ts.intake.saved[0], []byte("Ada")) {
		t.Fatalf("payload not forwarded: %v", ts.intake.saved)
	}
}

func TestHandleSave_LockedConflict(t *testing.T) {
	ts := newTestServer(t, t.TempDir())
	ts.intake.saveErr = common.ErrLocked

	rec := doJSON(ts, http.MethodPut, "/api/intake/d1", bearerToken(t), `{}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d", rec.Code)
	}
	var apiErr APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &apiErr); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if apiErr.Code != "LOCKED" {
		t.Fatalf("unexpected code: %q", apiErr.Code)
	}
}

func TestHandleSubmit_ConsentIncompleteBadRequest(t *testing.T) {
	ts := newTestServer(t, t.TempDir())
	ts.intake.submitErr = common.ErrConsentIncomplete

	rec := doJSON(ts, http.MethodPost, "/api/intake/d1/submit", bearerToken(t), `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestHandleSubmit_OK(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	rec := doJSON(ts, http.MethodPost, "/api/intake/d1/submit", bearerToken(t), `{}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", rec.Code)
	}
	if !ts.intake.submitted {
		t.Fatalf("submit not forwarded")
	}
}

func TestHandleList_RequiresCategory(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	rec := doJSON(ts, http.MethodGet, "/api/intake/d1/files", bearerToken(t), "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestHandleUpload_Multipart(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "w2.pdf")
	if err != nil {
		t.Fatalf("CreateFormFile error: %v", err)
	}
	if _, err := part.Write([]byte("pdf-bytes")); err != nil {
		t.Fatalf("write error: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/intake/d1/files?category=income", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body)
	}
	if ts.files.uploaded == nil || ts.files.uploaded.OriginalName != "w2.pdf" || ts.files.uploaded.Category != "income" {
		t.Fatalf("upload not forwarded: %+v", ts.files.uploaded)
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	ts := newTestServer(t, t.TempDir())
	ts.files.deleteErr = common.ErrorNotFound

	rec := doJSON(ts, http.MethodDelete, "/api/files/missing", bearerToken(t), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}

func TestForm8879_DownloadHeaders(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "f8879.pdf"), []byte("%PDF-1.7"), 0o600); err != nil {
		t.Fatalf("write error: %v", err)
	}
	ts := newTestServer(t, dir)

	rec := doJSON(ts, http.MethodGet, "/forms/8879", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("unexpected Cache-Control: %q", cc)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") || !strings.Contains(cd, "f8879.pdf") {
		t.Fatalf("unexpected Content-Disposition: %q", cd)
	}
}

func TestForm8879_MissingFileNotFound(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	rec := doJSON(ts, http.MethodGet, "/forms/8879", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}
