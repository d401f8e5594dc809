package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"todo-list/internal/errors"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the Google generative language REST API.
type GeminiClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

// NewGeminiClient creates a client for the hosted Gemini API.
func NewGeminiClient(apiKey, model string, timeout time.Duration) *GeminiClient {
	return NewGeminiClientWithBaseURL(apiKey, model, defaultBaseURL, timeout)
}

// NewGeminiClientWithBaseURL creates a client against a custom endpoint,
// used by tests to point at a local server.
func NewGeminiClientWithBaseURL(apiKey, model, baseURL string, timeout time.Duration) *GeminiClient {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiClient{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends the prompt to the generateContent endpoint and returns
// the first candidate's text. It satisfies the Generator seam.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", errors.NewUpstreamError("encode request", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.NewUpstreamError("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewUpstreamError("call generative language API", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", errors.NewUpstreamError("read response", err)
	}

	var decoded generateResponse
	if err := json.Unmarshal(resBody, &decoded); err != nil {
		return "", errors.NewUpstreamError("decode response", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := res.Status
		if decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}
		return "", errors.NewUpstreamError("generate content", fmt.Errorf("%s", msg))
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.NewUpstreamError("generate content", fmt.Errorf("model returned no text"))
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
