// Package llm provides a chat-completions client for the external model
// provider (OpenAI-compatible wire format).
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Client calls the chat-completions endpoint of the configured provider.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// ProviderError is returned on a non-2xx provider response. The status and
// body are preserved for the job's failure diagnostic.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("chat provider returned %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a chat-completions client. A circuit breaker guards the
// provider: after repeated consecutive failures further calls fail fast until
// the provider recovers.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "chat-provider",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		logger: slog.Default().With("component", "llm"),
	}
}

// ChatCompletion sends one conversation turn and returns the assistant
// message. Non-2xx responses surface as *ProviderError.
func (c *Client) ChatCompletion(ctx context.Context, req *ChatRequest) (*Message, *Usage, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doChatCompletion(ctx, req)
	})
	if err != nil {
		return nil, nil, err
	}
	resp := result.(*ChatResponse)

	if len(resp.Choices) == 0 {
		return nil, nil, fmt.Errorf("chat provider returned no choices")
	}
	return &resp.Choices[0].Message, &resp.Usage, nil
}

func (c *Client) doChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat provider request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}

	return &chatResp, nil
}
