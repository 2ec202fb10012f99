package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/amk-marketing/landing-api/internal/core/domain"
	"github.com/amk-marketing/landing-api/internal/core/ports"
)

type stubLeadService struct {
	submitFn func(ctx context.Context, input ports.SubmitLeadInput) (*ports.SubmitLeadResult, error)
	listFn   func(ctx context.Context) ([]*domain.Lead, error)
}

func (s *stubLeadService) SubmitLead(ctx context.Context, input ports.SubmitLeadInput) (*ports.SubmitLeadResult, error) {
	return s.submitFn(ctx, input)
}

func (s *stubLeadService) ListLeads(ctx context.Context) ([]*domain.Lead, error) {
	return s.listFn(ctx)
}

func newLeadContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/demo-request", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validBody = `{"fullName":"Nguyen Van A","phone":"0946734111","email":"a@b.com","organization":"ABC"}`

func TestLeadHandler_Submit_Success(t *testing.T) {
	stub := &stubLeadService{
		submitFn: func(_ context.Context, input ports.SubmitLeadInput) (*ports.SubmitLeadResult, error) {
			if input.FullName != "Nguyen Van A" || input.Phone != "0946734111" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.SubmitLeadResult{ID: 7, CreatedAt: time.Now().UTC()}, nil
		},
	}
	h := NewLeadHandler(stub)

	c, rec := newLeadContext(t, validBody)
	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Error("expected success=true")
	}
	if resp["id"] != float64(7) {
		t.Errorf("expected id 7, got %v", resp["id"])
	}
	if msg, _ := resp["message"].(string); msg == "" {
		t.Error("expected a success message")
	}
}

func TestLeadHandler_Submit_ValidationFailure(t *testing.T) {
	stub := &stubLeadService{
		submitFn: func(context.Context, ports.SubmitLeadInput) (*ports.SubmitLeadResult, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	}
	h := NewLeadHandler(stub)

	c, rec := newLeadContext(t, `{"phone":"0946734111","email":"a@b.com","organization":"ABC"}`)
	_ = h.Submit(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Errors  []FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "fullName" {
		t.Fatalf("expected one error for fullName, got %+v", resp.Errors)
	}
}

func TestLeadHandler_Submit_ShortPhone(t *testing.T) {
	h := NewLeadHandler(&stubLeadService{
		submitFn: func(context.Context, ports.SubmitLeadInput) (*ports.SubmitLeadResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	c, rec := newLeadContext(t, `{"fullName":"Nguyen Van A","phone":"094","email":"a@b.com","organization":"ABC"}`)
	_ = h.Submit(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"phone"`) {
		t.Errorf("expected a phone field error, got %s", rec.Body.String())
	}
}

func TestLeadHandler_Submit_InvalidPayload(t *testing.T) {
	h := NewLeadHandler(&stubLeadService{
		submitFn: func(context.Context, ports.SubmitLeadInput) (*ports.SubmitLeadResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	c, rec := newLeadContext(t, "not-json")
	_ = h.Submit(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLeadHandler_Submit_RelayFailure(t *testing.T) {
	h := NewLeadHandler(&stubLeadService{
		submitFn: func(context.Context, ports.SubmitLeadInput) (*ports.SubmitLeadResult, error) {
			return nil, domain.ErrWebhookFailed
		},
	})

	c, rec := newLeadContext(t, validBody)
	_ = h.Submit(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false {
		t.Error("expected success=false")
	}
}

func TestLeadHandler_List_Success(t *testing.T) {
	now := time.Now().UTC()
	h := NewLeadHandler(&stubLeadService{
		listFn: func(context.Context) ([]*domain.Lead, error) {
			return []*domain.Lead{
				{ID: 2, FullName: "B", CreatedAt: now},
				{ID: 1, FullName: "A", CreatedAt: now.Add(-time.Minute)},
			}, nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/demo-requests", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var leads []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &leads); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(leads))
	}
	if leads[0]["id"] != float64(2) {
		t.Errorf("expected newest lead first, got %+v", leads[0])
	}
	if _, ok := leads[0]["requirements"]; !ok {
		t.Error("unset requirements must serialize as explicit null, not be omitted")
	}
}

func TestLeadHandler_List_InternalFault(t *testing.T) {
	h := NewLeadHandler(&stubLeadService{
		listFn: func(context.Context) ([]*domain.Lead, error) {
			return nil, context.DeadlineExceeded
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/demo-requests", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.List(c)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
