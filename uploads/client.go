package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// File is one candidate file to submit
type File struct {
	Filename string
	Content  io.Reader
}

// TokenSource supplies the HR access token attached to requests. Returning
// "" sends the request without an Authorization header.
type TokenSource func() string

// Client submits candidate file batches and fetches their processing status.
// Every operation is attempt-once: no request is automatically retried.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
}

// ClientOption defines a function type to modify the Client instance
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTokenSource sets the access token supplier
func WithTokenSource(tokenSource TokenSource) ClientOption {
	return func(c *Client) {
		c.tokenSource = tokenSource
	}
}

// NewClient creates an upload client targeting the given API base URL
func NewClient(baseURL string, options ...ClientOption) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// Submit performs a single multipart submission of the given files. An empty
// file list fails with ValidationError before any network call. A
// non-success response fails with UploadError carrying the response body.
func (c *Client) Submit(ctx context.Context, files []File, jobID string) (*Batch, error) {
	if len(files) == 0 {
		return nil, &ValidationError{Message: "no files provided for upload"}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if jobID != "" {
		if err := writer.WriteField("jobId", jobID); err != nil {
			return nil, fmt.Errorf("[Submit] failed to write jobId field: %w", err)
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile("files", file.Filename)
		if err != nil {
			return nil, fmt.Errorf("[Submit] failed to create form file %q: %w", file.Filename, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, fmt.Errorf("[Submit] failed to write file %q: %w", file.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("[Submit] failed to finalise multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/candidates/uploads", &body)
	if err != nil {
		return nil, fmt.Errorf("[Submit] failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[Submit] request failed: %w", err)
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return nil, &UploadError{
			StatusCode: resp.StatusCode,
			Message:    readBody(resp.Body),
		}
	}

	var batch Batch
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, fmt.Errorf("[Submit] failed to decode response: %w", err)
	}
	return &batch, nil
}

// FetchStatus fetches the current batch state. A non-success response fails
// with StatusError.
func (c *Client) FetchStatus(ctx context.Context, uploadID string) (*Batch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/candidates/uploads/"+uploadID, nil)
	if err != nil {
		return nil, fmt.Errorf("[FetchStatus] failed to build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[FetchStatus] request failed: %w", err)
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    readBody(resp.Body),
		}
	}

	var batch Batch
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, fmt.Errorf("[FetchStatus] failed to decode response: %w", err)
	}
	return &batch, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.tokenSource == nil {
		return
	}
	if accessToken := c.tokenSource(); accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
}

func success(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

func readBody(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 64*1024))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
