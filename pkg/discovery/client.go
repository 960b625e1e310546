// Package discovery provides the client for the external embedding and
// semantic-discovery service that ranks registered agent packages against a
// task description.
package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Match is one ranked discovery result.
type Match struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PackageName string  `json:"package_name"`
	Similarity  float64 `json:"similarity"`
}

// Service is the narrow interface consumed by the agent loop and API.
type Service interface {
	Discover(ctx context.Context, task string, threshold float64, limit int) ([]Match, error)
	Reindex(ctx context.Context, agentID, description string) error
}

// Client talks to the discovery service's REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a discovery client.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default().With("component", "discovery"),
	}
}

// Discover returns agent packages ranked by similarity to the task.
func (c *Client) Discover(ctx context.Context, task string, threshold float64, limit int) ([]Match, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"task":      task,
		"threshold": threshold,
		"limit":     limit,
	})

	var resp struct {
		Matches []Match `json:"matches"`
	}
	if err := c.post(ctx, "/discover", body, &resp); err != nil {
		return nil, fmt.Errorf("discovery request failed: %w", err)
	}
	return resp.Matches, nil
}

// Reindex recomputes the embedding vector for one agent package description.
func (c *Client) Reindex(ctx context.Context, agentID, description string) error {
	body, _ := json.Marshal(map[string]interface{}{
		"agent_id":    agentID,
		"description": description,
	})
	if err := c.post(ctx, "/reindex", body, nil); err != nil {
		return fmt.Errorf("reindex request failed: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discovery service returned %d: %s", resp.StatusCode, string(respBody))
	}
	if out != nil && len(respBody) > 0 {
		return json.Unmarshal(respBody, out)
	}
	return nil
}
