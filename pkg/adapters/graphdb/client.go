package graphdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultQueryTimeout = 30 * time.Second

// Media types of the SPARQL 1.1 protocol exchange.
const (
	sparqlQueryMediaType   = "application/sparql-query"
	sparqlResultsMediaType = "application/sparql-results+json"
)

// Config holds GraphDB client configuration
type Config struct {
	// BaseURL is the default GraphDB base URL, e.g. http://localhost:7200.
	BaseURL string
	// Repository is the default repository ID queries run against.
	Repository string
	// QueryTimeout bounds every upstream call end to end.
	QueryTimeout time.Duration
	// Logger for client operations.
	Logger *zap.Logger
}

// QueryOptions carries per-request overrides for a single relay call.
// Endpoint and Repository take precedence over the client defaults when
// non-empty; Username and Password enable basic authentication only when
// both are set.
type QueryOptions struct {
	Endpoint   string
	Repository string
	Username   string
	Password   string
}

// Client issues SPARQL queries and repository lookups against a GraphDB
// REST endpoint. It is safe for concurrent use.
type Client struct {
	baseURL    string
	repository string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new GraphDB client
func NewClient(cfg *Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("graphdb base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid graphdb base URL: %w", err)
	}
	if cfg.Repository == "" {
		return nil, fmt.Errorf("graphdb repository is required")
	}

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		repository: cfg.Repository,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Query relays one SPARQL query to the store and returns the raw
// SPARQL-results JSON document. The query text is sent unchanged.
func (c *Client) Query(ctx context.Context, sparql string, opts QueryOptions) (json.RawMessage, error) {
	endpoint := c.queryURL(opts)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(sparql))
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	req.Header.Set("Accept", sparqlResultsMediaType)
	req.Header.Set("Content-Type", sparqlQueryMediaType)
	if opts.Username != "" && opts.Password != "" {
		req.SetBasicAuth(opts.Username, opts.Password)
	}

	c.logger.Debug("relaying SPARQL query",
		zap.String("url", endpoint),
		zap.Int("query_bytes", len(sparql)))

	return c.do(req)
}

// ListRepositories fetches the repository list from the store's REST API.
// An empty endpoint falls back to the client's default base URL. The call
// never carries authentication.
func (c *Client) ListRepositories(ctx context.Context, endpoint string) (json.RawMessage, error) {
	base := endpoint
	if base == "" {
		base = c.baseURL
	}
	target := fmt.Sprintf("%s/rest/repositories", strings.TrimSuffix(base, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build repositories request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("listing repositories", zap.String("url", target))

	return c.do(req)
}

// queryURL resolves the effective SPARQL endpoint for one call.
func (c *Client) queryURL(opts QueryOptions) string {
	base := opts.Endpoint
	if base == "" {
		base = c.baseURL
	}
	repository := opts.Repository
	if repository == "" {
		repository = c.repository
	}
	return fmt.Sprintf("%s/repositories/%s", strings.TrimSuffix(base, "/"), repository)
}

// do executes the request and maps the outcome onto the relay error
// taxonomy: exactly HTTP 200 is success, any other status is a
// RemoteQueryError, and transport failures are ConnectionErrors.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteQueryError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ConnectionError{Err: fmt.Errorf("failed to decode response body: %w", err)}
	}

	return payload, nil
}
