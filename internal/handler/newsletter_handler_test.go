package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/veldwerk/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock NewsletterService
// ---------------------------------------------------------------------------

type mockNewsletterService struct {
	subscribeFunc   func(ctx context.Context, email string, source model.SubscriptionSource) (string, error)
	unsubscribeFunc func(ctx context.Context, email string) error
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, email string, source model.SubscriptionSource) (string, error) {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, email, source)
	}
	return "id", nil
}

func (m *mockNewsletterService) Unsubscribe(ctx context.Context, email string) error {
	if m.unsubscribeFunc != nil {
		return m.unsubscribeFunc(ctx, email)
	}
	return nil
}

// ---------------------------------------------------------------------------
// subscribe tests
// ---------------------------------------------------------------------------

func TestNewsletterHandler_Subscribe_Success(t *testing.T) {
	var capturedEmail string
	var capturedSource model.SubscriptionSource
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, email string, source model.SubscriptionSource) (string, error) {
			capturedEmail = email
			capturedSource = source
			return "sub-1", nil
		},
	}
	h := NewNewsletterHandler(mock)

	body := `{"email":"reader@example.com","source":"homepage"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if capturedEmail != "reader@example.com" {
		t.Errorf("expected email forwarded, got %q", capturedEmail)
	}
	if capturedSource != model.SourceHomepage {
		t.Errorf("expected source=homepage, got %q", capturedSource)
	}

	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["id"] != "sub-1" {
		t.Errorf("expected id in response, got %v", resp)
	}
}

func TestNewsletterHandler_Subscribe_DefaultSource(t *testing.T) {
	var captured model.SubscriptionSource
	mock := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, email string, source model.SubscriptionSource) (string, error) {
			captured = source
			return "x", nil
		},
	}
	h := NewNewsletterHandler(mock)

	body := `{"email":"reader@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured != model.SourceFooter {
		t.Errorf("expected footer default, got %q", captured)
	}
}

func TestNewsletterHandler_Subscribe_InvalidInput(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{})

	for _, body := range []string{
		`{}`,
		`{"email":"not-an-address"}`,
		`{"email":"a@b.com","source":"billboard"}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Subscribe(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %s, got %d", body, rec.Code)
		}
	}
}

// ---------------------------------------------------------------------------
// unsubscribe tests
// ---------------------------------------------------------------------------

func TestNewsletterHandler_Unsubscribe_Success(t *testing.T) {
	var captured string
	mock := &mockNewsletterService{
		unsubscribeFunc: func(ctx context.Context, email string) error {
			captured = email
			return nil
		},
	}
	h := NewNewsletterHandler(mock)

	body := `{"email":"reader@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Unsubscribe(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if captured != "reader@example.com" {
		t.Errorf("expected email forwarded, got %q", captured)
	}
}

// TestNewsletterHandler_Unsubscribe_UnknownIsSuccess verifies the handler
// does not leak whether an address was on the list.
func TestNewsletterHandler_Unsubscribe_UnknownIsSuccess(t *testing.T) {
	h := NewNewsletterHandler(&mockNewsletterService{})

	body := `{"email":"never-subscribed@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Unsubscribe(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
