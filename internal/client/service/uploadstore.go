package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/ledgerline/taxintake/internal/filex"
	"github.com/ledgerline/taxintake/internal/wizard"
)

// fileDTO mirrors the server's uploaded-file representation.
type fileDTO struct {
	ID           string    `json:"id"`
	DraftID      string    `json:"draft_id"`
	Category     string    `json:"category"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	CreatedAt    time.Time `json:"created_at"`
}

func (f *fileDTO) toStoredFile() wizard.StoredFile {
	return wizard.StoredFile{
		ID:           f.ID,
		DraftID:      f.DraftID,
		Category:     wizard.Category(f.Category),
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		SizeBytes:    f.SizeBytes,
		CreatedAt:    f.CreatedAt,
	}
}

// UploadStore implements wizard.UploadStore over the HTTP API.
type UploadStore struct {
	client *Client
}

func NewUploadStore(client *Client) *UploadStore {
	return &UploadStore{client: client}
}

func filesPath(draftID string, category wizard.Category) string {
	return "/api/intake/" + url.PathEscape(draftID) + "/files?category=" + url.QueryEscape(string(category))
}

// quoteEscaper matches the escaping multipart.CreateFormFile applies to
// filenames embedded in a quoted Content-Disposition parameter.
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (s *UploadStore) List(ctx context.Context, draftID string, category wizard.Category) ([]wizard.StoredFile, error) {
	var dtos []fileDTO
	if err := s.client.doJSON(ctx, http.MethodGet, filesPath(draftID, category), nil, &dtos); err != nil {
		return nil, err
	}

	files := make([]wizard.StoredFile, 0, len(dtos))
	for i := range dtos {
		files = append(files, dtos[i].toStoredFile())
	}
	return files, nil
}

func (s *UploadStore) Upload(ctx context.Context, draftID string, category wizard.Category, file wizard.FileInput) (*wizard.StoredFile, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+quoteEscaper.Replace(file.Name)+`"`)
	header.Set("Content-Type", filex.MimeOrDefault(file.MimeType))
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file.Body); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	resp, err := s.client.do(ctx, http.MethodPost, filesPath(draftID, category), mw.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var dto fileDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, err
	}
	stored := dto.toStoredFile()
	return &stored, nil
}

func (s *UploadStore) Delete(ctx context.Context, file wizard.StoredFile) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/api/files/"+url.PathEscape(file.ID), nil, nil)
}
