package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hirestack/go-interview-server/internal/errors"
)

const defaultRequestTimeout = 15 * time.Second

var _ Source = (*HTTPSource)(nil)

// HTTPSource fetches raw scoring records from the external report service
// over REST. The service's payload is loosely typed, so the response is
// decoded generically and projected through FromMap.
type HTTPSource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// HTTPSourceOption defines a function type to modify the HTTPSource instance
type HTTPSourceOption func(*HTTPSource)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) HTTPSourceOption {
	return func(s *HTTPSource) {
		s.httpClient = httpClient
	}
}

// NewHTTPSource creates a report source against the external service
func NewHTTPSource(baseURL, apiKey string, options ...HTTPSourceOption) *HTTPSource {
	source := &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}

	for _, opt := range options {
		opt(source)
	}

	return source
}

func (s *HTTPSource) RawReport(ctx context.Context, candidateID string) (*RawReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/reports/"+candidateID, nil)
	if err != nil {
		return nil, fmt.Errorf("[RawReport] failed to build request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[RawReport] request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.ErrReportNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("[RawReport] report service returned status %d", resp.StatusCode)
	}

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("[RawReport] failed to decode response: %w", err)
	}

	return FromMap(candidateID, doc), nil
}
