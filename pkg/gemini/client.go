// Package gemini adapts Google's Generative Language API as the external
// verdict classifier. The response is treated as an untrusted boundary
// payload: required fields are validated before use, and any schema
// violation is reported as an error so callers fall back to the local-only
// result.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/detetive-digital/detetive/pkg/scan"
)

// DefaultBaseURL is the production Generative Language endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultModel is the model used for classification.
const DefaultModel = "gemini-2.5-flash"

const defaultTimeout = 20 * time.Second

// Client calls Gemini to classify text for scam/phishing signals.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithModel overrides the model name.
func WithModel(m string) Option {
	return func(c *Client) { c.model = m }
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient = newHTTPClient(d) }
}

// NewClient creates a classifier client. An empty apiKey yields a client
// that reports itself unavailable.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      DefaultModel,
		baseURL:    DefaultBaseURL,
		httpClient: newHTTPClient(defaultTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsAvailable reports whether an API key is configured.
func (c *Client) IsAvailable() bool {
	return c.apiKey != ""
}

// generateRequest is the generateContent request body. The response schema
// constrains the model to the verdict JSON shape.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// verdictPayload is the model's structured answer. Pointer fields let us
// distinguish "absent" from zero values when validating the boundary.
type verdictPayload struct {
	IsScam         *bool    `json:"is_scam"`
	RiskSummary    *string  `json:"risk_summary"`
	DetectedIssues []string `json:"detected_issues"`
}

var responseSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"is_scam":      map[string]any{"type": "BOOLEAN", "description": "True se for provável golpe"},
		"risk_summary": map[string]any{"type": "STRING", "description": "Um resumo de 1 ou 2 frases simples explicando o veredito"},
		"detected_issues": map[string]any{
			"type":  "ARRAY",
			"items": map[string]any{"type": "STRING", "description": "Explicação de um ponto suspeito específico"},
		},
	},
	"required": []string{"is_scam", "risk_summary", "detected_issues"},
}

const promptTemplate = `Analise o seguinte texto ou link em busca de sinais de golpe, phishing ou fraude digital voltado para o público brasileiro.

Texto para análise: %q

Responda estritamente em JSON seguindo este schema. Seja direto e explique como se falasse com uma pessoa idosa.`

// Classify asks Gemini for a verdict on the text. Any transport, HTTP or
// schema failure is returned as an error; nothing partial is ever returned.
func (c *Client) Classify(ctx context.Context, text string) (*scan.ExternalVerdict, error) {
	if !c.IsAvailable() {
		return nil, fmt.Errorf("gemini: no API key configured")
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, text)}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: response contains no candidates")
	}

	return parseVerdict(genResp.Candidates[0].Content.Parts[0].Text)
}

// parseVerdict validates the model's JSON answer and converts it to an
// ExternalVerdict. Missing required fields are schema violations, treated
// the same as an unavailable classifier.
func parseVerdict(raw string) (*scan.ExternalVerdict, error) {
	var p verdictPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse verdict JSON: %w", err)
	}
	if p.IsScam == nil {
		return nil, fmt.Errorf("gemini: verdict missing is_scam field")
	}
	if p.RiskSummary == nil {
		return nil, fmt.Errorf("gemini: verdict missing risk_summary field")
	}

	return &scan.ExternalVerdict{
		IsScam:  *p.IsScam,
		Issues:  p.DetectedIssues,
		Summary: *p.RiskSummary,
	}, nil
}
