// Package webhook forwards accepted leads to the external n8n automation
// endpoint. One destination, one synchronous POST per lead, no retries.
package webhook

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/amk-marketing/landing-api/internal/api/metrics"
	"github.com/amk-marketing/landing-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the relay destination and its trust settings.
type Config struct {
	URL string
	// InsecureSkipVerify disables certificate validation for this one
	// destination. The transport is private to this client; no other
	// outbound call in the process is affected.
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Relay delivers lead notifications over a dedicated HTTP client.
type Relay struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

func NewRelay(cfg Config, logger zerolog.Logger) *Relay {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{}
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Relay{
		url: cfg.URL,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// payload is the fixed field subset the automation workflow consumes.
// Absent optional fields are sent as empty strings, never omitted.
type payload struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Requirements string `json:"requirements"`
	Timestamp    string `json:"timestamp"`
}

// Notify POSTs the lead to the configured endpoint. Any non-2xx response or
// transport failure is a hard failure wrapping domain.ErrWebhookFailed.
func (r *Relay) Notify(ctx context.Context, lead *domain.Lead) error {
	body, err := json.Marshal(payload{
		FullName:     lead.FullName,
		Phone:        lead.Phone,
		Email:        lead.Email,
		Requirements: lead.RequirementsOrEmpty(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("%w: encode payload: %v", domain.ErrWebhookFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrWebhookFailed, err)
	}
	deliveryID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-ID", deliveryID)

	start := time.Now()
	resp, err := r.client.Do(req)
	metrics.WebhookDeliveryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.WebhookDeliveriesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrWebhookFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.WebhookDeliveriesTotal.WithLabelValues("error").Inc()
		r.logger.Warn().Int("status", resp.StatusCode).Str("delivery_id", deliveryID).Msg("webhook rejected delivery")
		return fmt.Errorf("%w: status %d", domain.ErrWebhookFailed, resp.StatusCode)
	}

	metrics.WebhookDeliveriesTotal.WithLabelValues("ok").Inc()
	r.logger.Info().Int("lead_id", lead.ID).Str("delivery_id", deliveryID).Msg("lead relayed")
	return nil
}
