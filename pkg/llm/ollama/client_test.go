package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raglabs/querykit-go/pkg/llm"
	"github.com/raglabs/querykit-go/pkg/llm/ollama"
)

func TestNewClient_Defaults(t *testing.T) {
	client, err := ollama.NewClient(&ollama.Config{})

	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NoError(t, client.Close())
}

func TestGenerate(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": map[string]string{
				"role":    "assistant",
				"content": "version one\nversion two",
			},
		})
	}))
	defer server.Close()

	client, err := ollama.NewClient(&ollama.Config{
		Model:   "llama3.1:8b",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	response, err := client.Generate(context.Background(), "expand this query",
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(128),
	)
	require.NoError(t, err)

	assert.Equal(t, "version one\nversion two", response)
	assert.Equal(t, "llama3.1:8b", captured["model"])
	assert.Equal(t, false, captured["stream"])

	options, ok := captured["options"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 0.3, options["temperature"])
	assert.Equal(t, float64(128), options["num_predict"])
}

func TestGenerate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, err := ollama.NewClient(&ollama.Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestGenerate_BearerTokenWhenAPIKeySet(t *testing.T) {
	var authorization string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": map[string]string{"content": "ok"},
		})
	}))
	defer server.Close()

	client, err := ollama.NewClient(&ollama.Config{
		APIKey:  "secret",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", authorization)
}
