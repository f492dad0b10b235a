package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	openapierrors "github.com/go-openapi/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	return New(Config{
		Host:        u.Host,
		BasePath:    "/v1",
		Scheme:      "http",
		APIKey:      "sk-test",
		Model:       "gpt-3.5-turbo",
		MaxTokens:   800,
		Temperature: 0.7,
	})
}

func TestRecommend_SendsChatCompletion(t *testing.T) {
	var got ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Bleed the brakes.  "}}]}`))
	})

	text, err := c.Recommend(context.Background(), "check my bike")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if text != "  Bleed the brakes.  " {
		t.Fatalf("text = %q", text)
	}
	if got.Model != "gpt-3.5-turbo" || got.MaxTokens != 800 || got.Temperature != 0.7 {
		t.Fatalf("request = %+v", got)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || got.Messages[0].Content != "check my bike" {
		t.Fatalf("messages = %+v", got.Messages)
	}
}

func TestRecommend_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	})

	_, err := c.Recommend(context.Background(), "prompt")
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr openapierrors.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err %T is not an openapi error", err)
	}
	if apiErr.Code() != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", apiErr.Code())
	}
}

func TestRecommend_NoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	if _, err := c.Recommend(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestNew_DefaultsToHTTPS(t *testing.T) {
	c := New(Config{Host: "api.openai.com", BasePath: "/v1"})
	if c.scheme != "https" {
		t.Fatalf("scheme = %q, want https", c.scheme)
	}

	c = New(Config{Host: "localhost:8080", Scheme: "http"})
	if c.scheme != "http" {
		t.Fatalf("scheme = %q, want http", c.scheme)
	}
}
