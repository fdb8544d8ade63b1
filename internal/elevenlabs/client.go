// Package elevenlabs creates conversational agents through the ElevenLabs
// Conversational AI REST API.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"futureyou/internal/agent"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://api.elevenlabs.io"

	createAgentPath = "/v1/convai/agents/create"
	apiKeyHeader    = "xi-api-key"
	maxErrorBody    = 64 * 1024
)

type Options struct {
	APIKey  string
	BaseURL string
	// Timeout bounds a whole request. Zero means no client-side limit.
	Timeout time.Duration
	// HTTPClient overrides the instrumented default client.
	HTTPClient *http.Client
}

// Client implements agent.Provisioner.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ agent.Provisioner = (*Client)(nil)

func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &Client{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// CreateAgent submits cfg and returns the identifier of the new agent.
// Non-2xx answers are returned as *APIError.
func (c *Client) CreateAgent(ctx context.Context, cfg agent.Config) (*agent.Result, error) {
	body, err := json.Marshal(newCreateAgentRequest(cfg))
	if err != nil {
		return nil, fmt.Errorf("encoding create agent request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createAgentPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	slog.Debug("elevenlabs: creating agent", "name", cfg.Name, "voice_id", cfg.ConversationConfig.TTS.VoiceID, "bytes", len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending create agent request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := newAPIError(resp, raw)
		slog.Warn("elevenlabs: create agent rejected",
			"status", resp.StatusCode,
			"status_text", http.StatusText(resp.StatusCode),
			"detail_status", apiErr.Status,
			"message", apiErr.Message,
		)
		return nil, apiErr
	}

	var out createAgentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding create agent response: %w", err)
	}

	result := &agent.Result{AgentID: out.AgentIDCamel, LegacyAgentID: out.AgentID}
	if result.ID() == "" {
		return nil, errors.New("create agent response has no agent_id")
	}

	slog.Debug("elevenlabs: agent created", "agent_id", result.ID())
	return result, nil
}
