// Package gateway provides a client for the inventory agent gateway API
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/stockdeck/stockdeck/internal/common"
	"github.com/stockdeck/stockdeck/internal/interfaces"
	"github.com/stockdeck/stockdeck/internal/models"
)

const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the GatewayClient interface
type Client struct {
	baseURL    string
	apiKey     string
	requestID  string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithAPIKey sets the static API key attached to every request
func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new gateway client. A fresh correlation id is
// generated once per client and sent as x-request-id on every request.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   baseURL,
		requestID: uuid.NewString(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// RequestID returns the correlation id sent with every request.
func (c *Client) RequestID() string {
	return c.requestID
}

// APIError represents a non-2xx gateway response
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-request-id", c.requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("Gateway request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
			Endpoint:   path,
		}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, result)
}

type agentsResponse struct {
	Agents []models.AgentDescriptor `json:"agents"`
}

type statsResponse struct {
	Stats *models.StatsSnapshot `json:"stats"`
}

type risksResponse struct {
	Risks []models.RiskRecord `json:"risks"`
}

type inventoryResponse struct {
	Items []models.InventoryRecord `json:"items"`
}

type invokeResponse struct {
	Response *models.AgentResponse `json:"response"`
}

// ListAgents retrieves the agent roster. Agents whose structured replies
// update the risk set are tagged here, at the decode boundary, so the rest
// of the system works off the capability rather than the literal id.
func (c *Client) ListAgents(ctx context.Context) ([]models.AgentDescriptor, error) {
	var resp agentsResponse
	if err := c.get(ctx, "/agents/list", nil, &resp); err != nil {
		return nil, err
	}

	agents := resp.Agents
	if agents == nil {
		agents = []models.AgentDescriptor{}
	}
	for i := range agents {
		agents[i].ProducesRiskUpdates = agents[i].ID == models.AgentStockoutSentinel
	}
	return agents, nil
}

// GetStats retrieves the aggregate counters. A valid response without a
// stats object degrades to the default snapshot.
func (c *Client) GetStats(ctx context.Context) (models.StatsSnapshot, error) {
	var resp statsResponse
	if err := c.get(ctx, "/agents/stats", nil, &resp); err != nil {
		return models.DefaultStats(), err
	}
	if resp.Stats == nil {
		return models.DefaultStats(), nil
	}
	stats := *resp.Stats
	if stats.Categories == nil {
		stats.Categories = []string{}
	}
	return stats, nil
}

// GetRisks retrieves up to limit stockout-risk records.
func (c *Client) GetRisks(ctx context.Context, limit int) ([]models.RiskRecord, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp risksResponse
	if err := c.get(ctx, "/data/risks", query, &resp); err != nil {
		return nil, err
	}
	if resp.Risks == nil {
		return []models.RiskRecord{}, nil
	}
	return resp.Risks, nil
}

// GetInventory retrieves inventory records for the given query.
func (c *Client) GetInventory(ctx context.Context, opts interfaces.InventoryQuery) ([]models.InventoryRecord, error) {
	queryType := opts.QueryType
	if queryType == "" {
		queryType = "all"
	}

	query := url.Values{}
	query.Set("query_type", queryType)
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var resp inventoryResponse
	if err := c.get(ctx, "/data/inventory", query, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		return []models.InventoryRecord{}, nil
	}
	return resp.Items, nil
}

// InvokeAgent runs one conversational turn. A valid envelope without a
// response object yields an empty response, not an error; the session
// controller substitutes its fallback text.
func (c *Client) InvokeAgent(ctx context.Context, req models.InvokeRequest) (*models.AgentResponse, error) {
	var resp invokeResponse
	if err := c.post(ctx, "/agents/invoke", req, &resp); err != nil {
		return nil, err
	}
	if resp.Response == nil {
		return &models.AgentResponse{}, nil
	}
	return resp.Response, nil
}

// Health probes gateway connectivity.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil, nil)
}
