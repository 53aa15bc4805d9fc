package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/avabot/assistant/internal/api"
	"github.com/avabot/assistant/internal/assistant"
	"github.com/avabot/assistant/internal/catalog"
	"github.com/avabot/assistant/internal/llm"
)

type stubCompletions struct {
	reply string
	err   error
}

func (s *stubCompletions) Complete(ctx context.Context, prompt string, config *llm.CompletionConfig) (string, error) {
	return s.reply, s.err
}

func newTestEngine(products catalog.Catalog, completions llm.CompletionClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := assistant.NewService(products, completions, nil)
	engine := gin.New()
	engine.POST("/chatbot", NewChatHandler(service).HandleChat)
	return engine
}

func TestHandleChat_MissingQueryFieldIsRejected(t *testing.T) {
	engine := newTestEngine(nil, &stubCompletions{})

	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing query field, got %d", rec.Code)
	}
}

func TestHandleChat_ShoppingQueryIncludesProducts(t *testing.T) {
	products := catalog.Catalog{{Name: "Blue Shirt", Price: 3000}}
	engine := newTestEngine(products, &stubCompletions{})

	req := httptest.NewRequest(http.MethodPost, "/chatbot",
		strings.NewReader(`{"query": "I want to buy a blue shirt under 5,000"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp api.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].Name != "Blue Shirt" {
		t.Fatalf("expected Blue Shirt in products, got %+v", resp.Products)
	}
}

func TestHandleChat_GreetingOmitsProductsField(t *testing.T) {
	engine := newTestEngine(nil, &stubCompletions{})

	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"query": "hello"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"products"`) {
		t.Fatalf("expected the products field to be omitted, got %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Avabot") {
		t.Fatalf("expected the fixed introduction, got %s", rec.Body.String())
	}
}

func TestHandleChat_CompletionFailureStillAnswers200(t *testing.T) {
	engine := newTestEngine(nil, &stubCompletions{err: context.DeadlineExceeded})

	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"query": "tell me a joke"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("completion failures must stay 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "trouble answering") {
		t.Fatalf("expected the fixed apology, got %s", rec.Body.String())
	}
}
