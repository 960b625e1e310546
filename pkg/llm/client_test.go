package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCompletion(t *testing.T) {
	var gotReq ChatRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "chatcmpl-1",
			"choices": []map[string]interface{}{{
				"index": 0,
				"message": map[string]interface{}{
					"role": "assistant",
					"tool_calls": []map[string]interface{}{{
						"id":   "call-1",
						"type": "function",
						"function": map[string]interface{}{
							"name":      "final_answer",
							"arguments": `{"answer":"4"}`,
						},
					}},
				},
				"finish_reason": "tool_calls",
			}},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")
	msg, usage, err := client.ChatCompletion(context.Background(), &ChatRequest{
		Model:      "gpt-4o-mini",
		Messages:   []Message{{Role: RoleUser, Content: "2+2?"}},
		Tools:      []Tool{NewFunctionTool("final_answer", "finish", `{"type":"object"}`)},
		ToolChoice: "auto",
		MaxTokens:  4096,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.Equal(t, "auto", gotReq.ToolChoice)
	assert.Equal(t, 4096, gotReq.MaxTokens)

	require.Len(t, msg.ToolCalls, 1)
	assert.Equal(t, "final_answer", msg.ToolCalls[0].Function.Name)
	assert.Equal(t, 15, usage.TotalTokens)
}

func TestChatCompletion_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"overloaded"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "t")
	_, _, err := client.ChatCompletion(context.Background(), &ChatRequest{Model: "m"})
	require.Error(t, err)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusServiceUnavailable, pe.StatusCode)
	assert.Contains(t, pe.Body, "overloaded")
}

func TestChatCompletion_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "t")
	_, _, err := client.ChatCompletion(context.Background(), &ChatRequest{Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestChatCompletion_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "t")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _, err := client.ChatCompletion(ctx, &ChatRequest{Model: "m"})
		require.Error(t, err)
	}

	// The breaker is now open: calls fail fast without reaching the provider.
	_, _, err := client.ChatCompletion(ctx, &ChatRequest{Model: "m"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
}
