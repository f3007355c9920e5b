package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(ClientConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

func TestChatText(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, 0.7, req.Options["temperature"])

		json.NewEncoder(w).Encode(chatResponse{
			Model:   req.Model,
			Message: Message{Role: RoleAssistant, Content: "hello there"},
			Done:    true,
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.Chat(context.Background(), "llama3.2", []Message{
		{Role: RoleUser, Content: "hi"},
	}, nil)
	require.NoError(t, err)
	assert.False(t, result.IsToolCall())
	assert.Equal(t, "hello there", result.Text())
}

func TestChatToolCall(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{
			Message: Message{
				Role: RoleAssistant,
				ToolCalls: []ToolCall{{
					Function: ToolCallFunction{
						Name:      "unit_converter",
						Arguments: json.RawMessage(`{"value":100,"from_unit":"celsius","to_unit":"fahrenheit"}`),
					},
				}},
			},
			Done: true,
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.Chat(context.Background(), "llama3.2", nil, []ToolDef{
		NewToolDef("unit_converter", "convert units", map[string]any{"type": "object"}),
	})
	require.NoError(t, err)
	require.True(t, result.IsToolCall())
	assert.Equal(t, "unit_converter", result.ToolCalls()[0].Function.Name)
	assert.JSONEq(t, `{"value":100,"from_unit":"celsius","to_unit":"fahrenheit"}`,
		string(result.ToolCalls()[0].Function.Arguments))
}

func TestChatModelNotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(errorResponse{Error: `model "nope" not found, try pulling it first`})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Chat(context.Background(), "nope", nil, nil)
	require.ErrorIs(t, err, ErrModelNotFound)
}

func TestChatEndpointUnavailable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := newTestClient(srv.URL)
	_, err := client.Chat(context.Background(), "llama3.2", nil, nil)
	require.ErrorIs(t, err, ErrEndpointUnavailable)
}

func TestChatEndpointTimeout(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := client.Chat(context.Background(), "llama3.2", nil, nil)
	require.ErrorIs(t, err, ErrEndpointTimeout)
}

func TestListModels(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"models": []ModelInfo{
				{Name: "llama3.2:latest", Size: 2_000_000_000},
				{Name: "codellama:latest", Size: 3_800_000_000},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "llama3.2:latest", models[0].Name)
}

func TestShowModel(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/show", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req["model"])

		w.Write([]byte(`{"details":{"family":"llama","parameter_size":"3.2B","quantization_level":"Q4_K_M"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	details, err := client.ShowModel(context.Background(), "llama3.2")
	require.NoError(t, err)
	assert.Equal(t, "llama", details.Details.Family)
}

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()
	client := NewClient(ClientConfig{})
	assert.Equal(t, DefaultBaseURL, client.BaseURL())

	trimmed := NewClient(ClientConfig{BaseURL: "http://localhost:11434/"})
	assert.Equal(t, "http://localhost:11434", trimmed.BaseURL())
}
