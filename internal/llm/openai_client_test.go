package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(serverURL string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     "test-key",
		model:      "gpt-3.5-turbo",
		apiURL:     serverURL,
		httpClient: http.DefaultClient,
	}
}

func TestOpenAIClient_Complete(t *testing.T) {
	var captured openAIRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello back"}}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	temperature := float32(0.7)
	got, err := client.Complete(context.Background(), "say hello", &CompletionConfig{
		MaxTokens:   50,
		Temperature: &temperature,
	})
	if err != nil {
		t.Fatalf("expected completion to succeed, got error: %v", err)
	}
	if got != "hello back" {
		t.Fatalf("expected %q, got %q", "hello back", got)
	}

	if captured.Model != "gpt-3.5-turbo" {
		t.Errorf("expected configured model in payload, got %q", captured.Model)
	}
	if captured.MaxTokens != 50 {
		t.Errorf("expected max_tokens 50, got %d", captured.MaxTokens)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" || captured.Messages[0].Content != "say hello" {
		t.Errorf("unexpected messages payload: %+v", captured.Messages)
	}
}

func TestOpenAIClient_ClientErrorsAreNotRetried(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	if _, err := client.Complete(context.Background(), "hi", nil); err == nil {
		t.Fatal("expected an error on HTTP 400")
	}
	if requests != 1 {
		t.Fatalf("expected exactly one request on a client error, got %d", requests)
	}
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Complete(context.Background(), "hi", nil); err == nil {
		t.Fatal("expected an error for an empty choices array")
	}
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIClient("", "gpt-3.5-turbo"); err == nil {
		t.Fatal("expected an error for an empty API key")
	}
}
