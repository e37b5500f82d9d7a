/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/humaidq/medreport/report"
)

// Analyzer turns report bytes into a structured analysis.
type Analyzer interface {
	Analyze(ctx context.Context, data []byte, mimeType string) (*report.AnalysisResult, error)
}

// Unavailable is an Analyzer that fails every call with Err. It stands in
// when no client could be configured so the rest of the app keeps working.
type Unavailable struct {
	Err error
}

// Analyze always fails.
func (u Unavailable) Analyze(context.Context, []byte, string) (*report.AnalysisResult, error) {
	return nil, fmt.Errorf("%w: %w", ErrAnalysis, u.Err)
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a client. A nil httpClient uses a client without its
// own timeout; Config.Timeout is applied per call through the context.
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{config: cfg, httpClient: httpClient}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.config.Model
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type part struct {
	InlineData *inlineData `json:"inlineData,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   *report.Schema `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	Error *apiError `json:"error,omitempty"`
}

func newGenerateRequest(data []byte, mimeType string) generateRequest {
	return generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(data),
				}},
				{Text: Prompt},
			},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   report.ResponseSchema(),
		},
	}
}

func (c *Client) endpoint() string {
	return c.config.BaseURL + "/v1beta/models/" + url.PathEscape(c.config.Model) + ":generateContent"
}

// Analyze sends the report to the model once and decodes the result. Every
// failure wraps ErrAnalysis; no retry is attempted.
func (c *Client) Analyze(ctx context.Context, data []byte, mimeType string) (*report.AnalysisResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, ErrEmptyInput)
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	text, err := c.generate(ctx, newGenerateRequest(data, mimeType))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	result, err := report.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	return result, nil
}

func (c *Client) generate(ctx context.Context, reqBody generateRequest) (string, error) {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call model: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var genResp generateResponse
	decodeErr := json.Unmarshal(respBytes, &genResp)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && genResp.Error != nil && genResp.Error.Message != "" {
			return "", fmt.Errorf("model API error (status %d): %s", resp.StatusCode, genResp.Error.Message)
		}
		return "", fmt.Errorf("model API returned status %d: %s", resp.StatusCode, truncate(string(respBytes), 512))
	}

	if decodeErr != nil {
		return "", fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if genResp.Error != nil && genResp.Error.Message != "" {
		return "", fmt.Errorf("model API error: %s", genResp.Error.Message)
	}
	if genResp.PromptFeedback != nil && genResp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrPromptBlocked, genResp.PromptFeedback.BlockReason)
	}
	if len(genResp.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	var sb strings.Builder
	for _, p := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return sb.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
