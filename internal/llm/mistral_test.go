package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewMistralRequiresKey(t *testing.T) {
	if _, err := NewMistral("", "", "", 0); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if _, err := NewMistral("   ", "", "", 0); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey for blank key, got %v", err)
	}
}

func TestNewMistralDefaults(t *testing.T) {
	client, err := NewMistral("key", "", "", 0)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if client.Model() != "mistral-large-latest" {
		t.Fatalf("unexpected default model %s", client.Model())
	}
	if client.Name() != "mistral" {
		t.Fatalf("unexpected name %s", client.Name())
	}
}

func TestMistralCompleteSingleTurn(t *testing.T) {
	var gotAuth string
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Category: card arrival"}}]}`))
	}))
	defer srv.Close()

	client, err := NewMistral("test-key", srv.URL, "mistral-small-latest", 5*time.Second)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	out, err := client.Complete(context.Background(), "classify this")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != "Category: card arrival" {
		t.Fatalf("unexpected completion %q", out)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotBody.Model != "mistral-small-latest" {
		t.Fatalf("unexpected model %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" || gotBody.Messages[0].Content != "classify this" {
		t.Fatalf("expected exactly one user message, got %+v", gotBody.Messages)
	}
}

func TestMistralCompleteServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewMistral("test-key", srv.URL, "", time.Second)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if _, err := client.Complete(context.Background(), "hello"); err == nil {
		t.Fatalf("expected service error to surface")
	}
}

func TestMistralCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client, err := NewMistral("test-key", srv.URL, "", time.Second)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if _, err := client.Complete(context.Background(), "hello"); err == nil {
		t.Fatalf("expected empty-choices error")
	}
}
