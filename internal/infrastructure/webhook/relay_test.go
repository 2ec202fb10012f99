package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/amk-marketing/landing-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

func testLead() *domain.Lead {
	return &domain.Lead{
		ID:           1,
		FullName:     "Nguyen Van A",
		Phone:        "0946734111",
		Email:        "a@b.com",
		Organization: "ABC",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestRelay_Notify_Success(t *testing.T) {
	var received payload
	var deliveryID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		deliveryID = r.Header.Get("X-Delivery-ID")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("invalid body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	relay := NewRelay(Config{URL: srv.URL}, discardLogger)
	if err := relay.Notify(context.Background(), testLead()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if received.FullName != "Nguyen Van A" || received.Phone != "0946734111" {
		t.Errorf("unexpected payload: %+v", received)
	}
	if received.Email != "a@b.com" {
		t.Errorf("email not forwarded: %q", received.Email)
	}
	if received.Requirements != "" {
		t.Errorf("unset requirements must forward as empty string, got %q", received.Requirements)
	}
	if _, err := time.Parse(time.RFC3339, received.Timestamp); err != nil {
		t.Errorf("timestamp not RFC3339: %q", received.Timestamp)
	}
	if deliveryID == "" {
		t.Error("expected X-Delivery-ID header")
	}
}

func TestRelay_Notify_ForwardsRequirements(t *testing.T) {
	var received payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
	}))
	defer srv.Close()

	lead := testLead()
	req := "cần demo"
	lead.Requirements = &req

	relay := NewRelay(Config{URL: srv.URL}, discardLogger)
	if err := relay.Notify(context.Background(), lead); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received.Requirements != "cần demo" {
		t.Errorf("requirements not forwarded: %q", received.Requirements)
	}
}

func TestRelay_Notify_Non2xxIsHardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	relay := NewRelay(Config{URL: srv.URL}, discardLogger)
	err := relay.Notify(context.Background(), testLead())
	if !errors.Is(err, domain.ErrWebhookFailed) {
		t.Fatalf("expected ErrWebhookFailed, got %v", err)
	}
}

func TestRelay_Notify_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	relay := NewRelay(Config{URL: srv.URL}, discardLogger)
	err := relay.Notify(context.Background(), testLead())
	if !errors.Is(err, domain.ErrWebhookFailed) {
		t.Fatalf("expected ErrWebhookFailed, got %v", err)
	}
}

func TestRelay_Notify_InsecureSkipVerify(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// The test server uses a self-signed certificate: a strict client fails,
	// the skip-verify client succeeds.
	strict := NewRelay(Config{URL: srv.URL}, discardLogger)
	if err := strict.Notify(context.Background(), testLead()); !errors.Is(err, domain.ErrWebhookFailed) {
		t.Fatalf("strict client should reject self-signed cert, got %v", err)
	}

	trusting := NewRelay(Config{URL: srv.URL, InsecureSkipVerify: true}, discardLogger)
	if err := trusting.Notify(context.Background(), testLead()); err != nil {
		t.Fatalf("skip-verify client should accept self-signed cert: %v", err)
	}
}
