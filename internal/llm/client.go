// Package llm talks to the structured-generation backend (Gemini) and
// classifies every failed call into the error taxonomy the form surfaces.
package llm

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

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	// DefaultModel is used when the config does not name one.
	DefaultModel = "gemini-2.5-flash"
)

// Request is one structured-generation call.
type Request struct {
	SystemInstruction string
	UserPayload       string
	Schema            *ResponseSchema
}

// Generator is the structured-generation contract: returns the raw structured
// text on success, or a classified *Error.
type Generator interface {
	Generate(ctx context.Context, req *Request) (string, error)
}

// Client calls the Gemini generateContent endpoint. It owns its credential;
// there is no package-level key state.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API host (tests, proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for the given credential and model.
func NewClient(apiKey, model string, opts ...Option) *Client {
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geminiRequest struct {
	SystemInstruction *geminiContent   `json:"system_instruction,omitempty"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type safetyRating struct {
	Category string `json:"category"`
	Blocked  bool   `json:"blocked"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason  string         `json:"finishReason"`
		SafetyRatings []safetyRating `json:"safetyRatings"`
	} `json:"candidates"`
}

type geminiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends the request and returns the structured text. Any failure
// comes back as a classified *Error.
func (c *Client) Generate(ctx context.Context, req *Request) (string, error) {
	apiReq := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.UserPayload}}},
		},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
		},
	}
	if req.SystemInstruction != "" {
		apiReq.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemInstruction}}}
	}
	if req.Schema != nil {
		apiReq.GenerationConfig.ResponseSchema = req.Schema.Descriptor()
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return "", newError(Unclassified, "An API error occurred: %v", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", newError(Unclassified, "An API error occurred: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("llm.generate.transport_error", "error", err)
		return "", classifyMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr geminiErrorBody
		_ = json.Unmarshal(raw, &apiErr)
		c.logger.Warn("llm.generate.api_error",
			"status_code", resp.StatusCode, "status", apiErr.Error.Status)
		message := apiErr.Error.Message
		if message == "" {
			message = fmt.Sprintf("status %d: %s", resp.StatusCode, string(raw))
		}
		return "", classifyAPIError(apiErr.Error.Status, message)
	}

	var apiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", newError(Unclassified, "An API error occurred: %v", err)
	}

	return classifyResponse(&apiResp)
}

// classifyResponse extracts the candidate text or classifies the stop reason
// when there is none.
func classifyResponse(resp *geminiResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", classifyStop("", nil)
	}
	cand := resp.Candidates[0]

	var b strings.Builder
	for _, p := range cand.Content.Parts {
		b.WriteString(p.Text)
	}
	if text := strings.TrimSpace(b.String()); text != "" {
		return text, nil
	}

	// Any named reason, STOP included, classifies as a stop; EmptyResponse is
	// only for no reason at all.
	return "", classifyStop(cand.FinishReason, cand.SafetyRatings)
}
