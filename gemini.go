package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// GeminiAPIEndpoint is the Generative Language API base URL.
	GeminiAPIEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	// GeminiModel is the default model.
	GeminiModel = "gemini-2.5-flash-lite"

	// Generation parameters are fixed for the whole service; they are
	// not tunable per request.
	maxOutputTokens = 1000
	temperature     = 0.7
	topP            = 0.8
	topK            = 40

	upstreamTimeout = 60 * time.Second
)

// Sentinel causes for upstream failures. The chat handler maps these to
// HTTP statuses; everything else lands in the generic server-error bucket.
var (
	errUnauthorized  = errors.New("invalid or missing API key")
	errQuotaExceeded = errors.New("API quota exceeded")
)

// GeminiClient talks to the generateContent endpoint.
type GeminiClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewGeminiClient creates a client for the given key and model. An empty
// model selects the default.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = GeminiModel
	}
	return &GeminiClient{
		apiKey:   apiKey,
		model:    model,
		endpoint: GeminiAPIEndpoint,
		httpClient: &http.Client{
			Timeout: upstreamTimeout,
		},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate forwards the conversation and returns the model's reply text.
// The caller's context bounds the round trip; no retries are attempted.
func (c *GeminiClient) Generate(ctx context.Context, turns []Turn) (string, error) {
	req := geminiRequest{
		Contents: make([]geminiContent, 0, len(turns)),
		GenerationConfig: generationConfig{
			MaxOutputTokens: maxOutputTokens,
			Temperature:     temperature,
			TopP:            topP,
			TopK:            topK,
		},
	}
	for _, t := range turns {
		req.Contents = append(req.Contents, geminiContent{
			Role:  t.Role,
			Parts: []geminiPart{{Text: t.Content}},
		})
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal request")
	}

	url := c.endpoint + "/models/" + c.model + ":generateContent"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", errors.Wrap(err, "failed to create HTTP request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "HTTP request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyAPIError(resp.StatusCode, respBody)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return "", errors.Wrapf(err, "failed to parse Gemini response: %s", string(respBody))
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content in Gemini response")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// classifyAPIError maps an upstream failure onto the sentinel causes.
// Invalid keys come back as 400 INVALID_ARGUMENT with an "API key" message
// rather than a 401, so the message is checked as well as the status.
func classifyAPIError(status int, body []byte) error {
	var apiErr geminiErrorResponse
	_ = json.Unmarshal(body, &apiErr)
	msg := apiErr.Error.Message
	if msg == "" {
		msg = string(body)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.Wrapf(errUnauthorized, "status %d: %s", status, msg)
	case strings.Contains(msg, "API key"):
		return errors.Wrapf(errUnauthorized, "status %d: %s", status, msg)
	case status == http.StatusTooManyRequests || strings.Contains(strings.ToLower(msg), "quota"):
		return errors.Wrapf(errQuotaExceeded, "status %d: %s", status, msg)
	default:
		return errors.Errorf("API request failed with status %d: %s", status, msg)
	}
}
