package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", "test-model", WithBaseURL(srv.URL))
}

func TestGenerateSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content":      map[string]any{"parts": []map[string]any{{"text": `{"goal":"tulis SOP"}`}}},
				"finishReason": "STOP",
			}},
		})
	})

	text, err := client.Generate(context.Background(), &Request{
		SystemInstruction: "ekstrak field",
		UserPayload:       "dokumen panjang",
		Schema:            NewResponseSchema("goal"),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"goal":"tulis SOP"}`, text)

	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Contains(t, gotBody, "system_instruction")
	cfg := gotBody["generationConfig"].(map[string]any)
	assert.Equal(t, "application/json", cfg["responseMimeType"])
	schema := cfg["responseSchema"].(map[string]any)
	assert.Equal(t, "OBJECT", schema["type"])
}

func TestGenerateSafetyBlock(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"finishReason": "SAFETY",
				"safetyRatings": []map[string]any{
					{"category": "HARM_CATEGORY_HATE_SPEECH", "blocked": true},
				},
			}},
		})
	})

	_, err := client.Generate(context.Background(), &Request{UserPayload: "x"})
	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, SafetyBlocked, llmErr.Kind)
	assert.Equal(t, []string{"HATE_SPEECH"}, llmErr.Categories)
}

func TestGenerateAPIErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    429,
				"message": "Quota exceeded for model",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	})

	_, err := client.Generate(context.Background(), &Request{UserPayload: "x"})
	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, QuotaExceeded, llmErr.Kind)
}

func TestGenerateAPIErrorWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	})

	_, err := client.Generate(context.Background(), &Request{UserPayload: "x"})
	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, Unclassified, llmErr.Kind)
}

func TestGenerateTransportError(t *testing.T) {
	client := NewClient("k", "m", WithBaseURL("http://127.0.0.1:1"))

	_, err := client.Generate(context.Background(), &Request{UserPayload: "x"})
	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, Network, llmErr.Kind)
}

func TestClassifyResponseNoCandidates(t *testing.T) {
	_, err := classifyResponse(&geminiResponse{})
	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, EmptyResponse, llmErr.Kind)
}

func TestClassifyResponseStopWithoutText(t *testing.T) {
	var resp geminiResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"candidates": [{"content": {"parts": [{"text": "  "}]}, "finishReason": "STOP"}]
	}`), &resp))

	_, err := classifyResponse(&resp)
	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, StoppedOther, llmErr.Kind, "a named reason is never an empty response")
	assert.Equal(t, "STOP", llmErr.Reason)
	assert.Contains(t, llmErr.Message, "stopped for the following reason: STOP")
}

func TestClassifyResponseJoinsParts(t *testing.T) {
	var resp geminiResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"candidates": [{"content": {"parts": [{"text": "{\"a\":"}, {"text": "\"b\"}"}]}, "finishReason": "STOP"}]
	}`), &resp))
	text, err := classifyResponse(&resp)
	require.NoError(t, err)
	assert.Equal(t, `{"a":"b"}`, text)
}

func TestNewClientDefaultModel(t *testing.T) {
	c := NewClient("k", "")
	assert.Equal(t, DefaultModel, c.model)
}
