// Package service implements the HTTP adapters the CLI uses to talk to the
// intake server: a sign-in flow plus wizard.DraftStore and wizard.UploadStore
// implementations.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ledgerline/taxintake/internal/common"
)

// Client is an authenticated HTTP client for the intake API. The zero token
// means unauthenticated; SetToken is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken installs the session JWT used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// decodeError maps an API error response onto the shared sentinels so callers
// can use errors.Is across the client/server boundary.
func decodeError(resp *http.Response) error {
	var apiErr apiError
	body, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(body, &apiErr)

	var base error
	switch resp.StatusCode {
	case http.StatusNotFound:
		base = common.ErrorNotFound
	case http.StatusConflict:
		base = common.ErrLocked
	case http.StatusUnauthorized:
		base = common.ErrorUnauthorized
	default:
		base = common.ErrorInternal
	}

	if apiErr.Message != "" {
		return fmt.Errorf("%s: %w", apiErr.Message, base)
	}
	return fmt.Errorf("server returned %d: %w", resp.StatusCode, base)
}

// do sends one request with the bearer token attached and returns the
// response when the status is 2xx.
func (c *Client) do(ctx context.Context, method, path string, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}

// doJSON sends a JSON request and decodes a JSON response into out (out may
// be nil for responses without a body).
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
