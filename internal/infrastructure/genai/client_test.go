package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/amk-marketing/landing-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

func candidateBody(text string) string {
	b, _ := json.Marshal(generateResponse{
		Candidates: []candidate{{Content: content{Parts: []part{{Text: text}}}}},
	})
	return string(b)
}

func TestClient_GenerateText_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateBody("Bài đăng mẫu")))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", Model: "gemini-test", BaseURL: srv.URL}, discardLogger)

	text, err := client.GenerateText(context.Background(), "viết bài về AMK")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Bài đăng mẫu" {
		t.Errorf("expected candidate text verbatim, got %q", text)
	}
	if !strings.Contains(gotPath, "gemini-test:generateContent") {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key not passed, got %q", gotKey)
	}
	if len(gotReq.Contents) != 1 || gotReq.Contents[0].Parts[0].Text != "viết bài về AMK" {
		t.Errorf("prompt not forwarded: %+v", gotReq)
	}
}

func TestClient_GenerateText_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, discardLogger)

	_, err := client.GenerateText(context.Background(), "prompt")
	if !errors.Is(err, domain.ErrContentUpstream) {
		t.Fatalf("expected ErrContentUpstream, got %v", err)
	}
}

func TestClient_GenerateText_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, discardLogger)

	_, err := client.GenerateText(context.Background(), "prompt")
	if !errors.Is(err, domain.ErrContentUpstream) {
		t.Fatalf("expected ErrContentUpstream, got %v", err)
	}
}

func TestClient_GenerateText_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, discardLogger)

	_, err := client.GenerateText(context.Background(), "prompt")
	if !errors.Is(err, domain.ErrContentUpstream) {
		t.Fatalf("expected ErrContentUpstream, got %v", err)
	}
}

func TestClient_Defaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"}, discardLogger)
	if client.model != defaultModel {
		t.Errorf("expected default model, got %q", client.model)
	}
	if client.baseURL != defaultBaseURL {
		t.Errorf("expected default base URL, got %q", client.baseURL)
	}
}
