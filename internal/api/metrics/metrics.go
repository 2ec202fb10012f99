// Package metrics defines all custom Prometheus metrics for the AMK landing
// backend. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "amk_landing"

// ── Lead metrics ──────────────────────────────────────────────────────────────

// LeadsCreatedTotal counts demo requests that were stored and relayed.
var LeadsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_created_total",
		Help:      "Total number of demo requests accepted (stored and relayed).",
	},
)

// LeadValidationErrorsTotal counts rejected submissions by failing field.
// Label:
//   - field: the JSON key that failed validation (e.g. "fullName")
var LeadValidationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_validation_errors_total",
		Help:      "Total number of submission validation failures, by field.",
	},
	[]string{"field"},
)

// ── Webhook metrics ───────────────────────────────────────────────────────────

// WebhookDeliveriesTotal counts relay attempts.
// Label:
//   - result: "ok" or "error"
var WebhookDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_deliveries_total",
		Help:      "Total number of webhook relay attempts, by result.",
	},
	[]string{"result"},
)

// WebhookDeliveryDuration measures the wall time of a single relay POST.
var WebhookDeliveryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "webhook_delivery_duration_seconds",
		Help:      "Duration of webhook relay deliveries.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Content generation metrics ────────────────────────────────────────────────

// ContentGenerationsTotal counts generative API calls.
// Label:
//   - result: "ok" or "error"
var ContentGenerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_generations_total",
		Help:      "Total number of content generation requests, by result.",
	},
	[]string{"result"},
)

// ContentGenerationDuration measures end-to-end generative API call latency.
var ContentGenerationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "content_generation_duration_seconds",
		Help:      "Duration of generative API calls.",
		Buckets:   prometheus.DefBuckets,
	},
)
