package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultTimeout = 30 * time.Second

	chatPath = "/api/chat"
	tagsPath = "/api/tags"
	showPath = "/api/show"
)

// ClientConfig holds per-client settings. Each client carries its own
// endpoint and timeout, so agents in the same process can safely point at
// different servers.
type ClientConfig struct {
	BaseURL     string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

// Client talks to a local Ollama server over its native HTTP API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	temperature float64
	maxTokens   int
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2048
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

type chatRequest struct {
	Model    string         `json:"model"`
	Messages []Message      `json:"messages"`
	Tools    []ToolDef      `json:"tools,omitempty"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type chatResponse struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
	Done    bool    `json:"done"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Chat sends the full conversation to /api/chat and returns the model's
// reply. The request is synchronous (stream disabled); the call blocks
// until the server answers or the client timeout expires.
func (c *Client) Chat(ctx context.Context, model string, messages []Message, tools []ToolDef) (*ChatResult, error) {
	req := chatRequest{
		Model:    model,
		Messages: messages,
		Tools:    tools,
		Stream:   false,
		Options: map[string]any{
			"temperature": c.temperature,
			"num_predict": c.maxTokens,
		},
	}

	slog.Debug("ollama: chat request", "model", model, "messages", len(messages), "tools", len(tools))

	var resp chatResponse
	if err := c.post(ctx, chatPath, req, &resp); err != nil {
		return nil, err
	}

	slog.Debug("ollama: chat response", "model", resp.Model, "tool_calls", len(resp.Message.ToolCalls))
	return &ChatResult{Message: resp.Message}, nil
}

// ListModels returns the models registered on the server (/api/tags).
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tagsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, c.statusError(httpResp)
	}

	var out struct {
		Models []ModelInfo `json:"models"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding model list: %w", err)
	}
	return out.Models, nil
}

// ShowModel returns metadata for a single model (/api/show).
func (c *Client) ShowModel(ctx context.Context, name string) (*ModelDetails, error) {
	var details ModelDetails
	if err := c.post(ctx, showPath, map[string]string{"model": name}, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.transportError(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return c.statusError(httpResp)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// transportError maps connection-level failures onto the endpoint error
// taxonomy so callers can branch with errors.Is.
func (c *Client) transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrEndpointTimeout, err)
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return fmt.Errorf("%w: %v", ErrEndpointTimeout, err)
	}
	return fmt.Errorf("%w at %s: %v", ErrEndpointUnavailable, c.baseURL, err)
}

func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr errorResponse
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		msg = apiErr.Error
	}

	// Ollama reports an unknown model as a 404 with an error body like
	// "model 'x' not found".
	if resp.StatusCode == http.StatusNotFound && strings.Contains(msg, "not found") {
		return fmt.Errorf("%w: %s", ErrModelNotFound, msg)
	}

	return fmt.Errorf("ollama returned %d: %s", resp.StatusCode, msg)
}
