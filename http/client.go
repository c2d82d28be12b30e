// Package http provides an HTTP implementation of pdfx.ExtractionService
// for the upload/extract REST API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/pdfx"
	"github.com/google/uuid"
)

// API paths relative to the base URL.
const (
	UploadPath  = "/api/v1/upload"
	ExtractPath = "/api/v1/extract"
	HealthPath  = "/api/v1/health"
)

// DefaultBaseURL is the address of a locally running extraction server.
const DefaultBaseURL = "http://localhost:8000"

// Fallback messages used when the server does not provide one.
const (
	uploadFailed  = "Failed to upload file"
	extractFailed = "Failed to extract data"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 1 << 20

// Ensure Client implements pdfx.ExtractionService at compile time.
var _ pdfx.ExtractionService = (*Client)(nil)

// Client talks to the extraction API over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.client = c
	}
}

// WithTimeout sets a per-request timeout.
// Zero, the default, leaves timeouts to the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.timeout = d
	}
}

// NewClient creates a new Client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload sends the file as multipart form data in the "file" field.
func (c *Client) Upload(ctx context.Context, f *pdfx.File) (*pdfx.UploadResult, error) {
	body, contentType, err := multipartBody(f)
	if err != nil {
		return nil, pdfx.WrapError(pdfx.EUPLOAD, uploadFailed, err)
	}

	resp, err := c.do(ctx, http.MethodPost, UploadPath, contentType, body)
	if err != nil {
		return nil, pdfx.WrapError(pdfx.EUPLOAD, uploadFailed, err)
	}
	defer resp.Body.Close()

	if !ok(resp.StatusCode) {
		return nil, responseError(pdfx.EUPLOAD, uploadFailed, resp, false)
	}

	var result pdfx.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, pdfx.WrapError(pdfx.EUPLOAD, uploadFailed, err)
	}
	if result.FileID == "" {
		return nil, pdfx.WrapError(pdfx.EUPLOAD, uploadFailed, fmt.Errorf("response has no file_id"))
	}
	return &result, nil
}

// Extract requests structured data for a previously uploaded file.
func (c *Client) Extract(ctx context.Context, fileID string, opts pdfx.ExtractOptions) (json.RawMessage, error) {
	if fileID == "" {
		return nil, pdfx.Errorf(pdfx.ESTATE, "No file has been uploaded")
	}

	payload, err := json.Marshal(opts)
	if err != nil {
		return nil, pdfx.WrapError(pdfx.EEXTRACT, extractFailed, err)
	}

	path := ExtractPath + "/" + url.PathEscape(fileID)
	resp, err := c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, pdfx.WrapError(pdfx.EEXTRACT, extractFailed, err)
	}
	defer resp.Body.Close()

	if !ok(resp.StatusCode) {
		return nil, responseError(pdfx.EEXTRACT, extractFailed, resp, true)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pdfx.WrapError(pdfx.EEXTRACT, extractFailed, err)
	}
	if !json.Valid(data) {
		return nil, pdfx.WrapError(pdfx.EEXTRACT, extractFailed, fmt.Errorf("response is not valid JSON"))
	}
	return json.RawMessage(data), nil
}

// Health returns nil if the server answers the health endpoint with a 2xx status.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, HealthPath, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if !ok(resp.StatusCode) {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, HealthPath)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	if c.timeout <= 0 {
		return c.send(ctx, method, path, contentType, body)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	resp, err := c.send(ctx, method, path, contentType, body)
	if err != nil {
		cancel()
		return nil, err
	}
	// The timeout context lives until the body is closed.
	resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	return c.client.Do(req)
}

// cancelBody releases a request's timeout context once the body is closed.
type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

func ok(status int) bool {
	return status >= 200 && status < 300
}

// multipartBody encodes f as a single-part form with field name "file".
func multipartBody(f *pdfx.File) (io.Reader, string, error) {
	if f.Open == nil {
		return nil, "", fmt.Errorf("file %q has no content", f.Name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, "", err
	}
	defer rc.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", f.MediaType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, rc); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// responseError builds an application error from a non-2xx response.
// The server's "detail" field is preferred; "error" is consulted only
// when checkErrorField is set. Non-string values are ignored.
func responseError(code, fallback string, resp *http.Response, checkErrorField bool) error {
	cause := fmt.Errorf("HTTP %d", resp.StatusCode)

	var body struct {
		Detail json.RawMessage `json:"detail"`
		Error  json.RawMessage `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err != nil {
		return pdfx.WrapError(code, fallback, cause)
	}

	if msg := stringValue(body.Detail); msg != "" {
		return pdfx.WrapError(code, msg, cause)
	}
	if checkErrorField {
		if msg := stringValue(body.Error); msg != "" {
			return pdfx.WrapError(code, msg, cause)
		}
	}
	return pdfx.WrapError(code, fallback, cause)
}

func stringValue(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
