// Package genai is a minimal client for the Gemini generateContent REST API.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/amk-marketing/landing-api/internal/api/metrics"
	"github.com/amk-marketing/landing-api/internal/core/domain"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash-exp"
	defaultTimeout = 30 * time.Second
)

// Config holds the upstream settings. BaseURL is overridable so tests can
// point the client at a local server.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// --- Wire types (subset of the generateContent contract) ---

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// GenerateText sends one prompt and returns the first candidate's first text
// part verbatim. Any non-2xx status or malformed body wraps
// domain.ErrContentUpstream.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", domain.ErrContentUpstream, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrContentUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.ContentGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ContentGenerationsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %v", domain.ErrContentUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ContentGenerationsTotal.WithLabelValues("error").Inc()
		c.logger.Warn().Int("status", resp.StatusCode).Str("model", c.model).Msg("generative API error")
		return "", fmt.Errorf("%w: status %d", domain.ErrContentUpstream, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		metrics.ContentGenerationsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrContentUpstream, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		metrics.ContentGenerationsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: empty candidate list", domain.ErrContentUpstream)
	}

	metrics.ContentGenerationsTotal.WithLabelValues("ok").Inc()
	return out.Candidates[0].Content.Parts[0].Text, nil
}
