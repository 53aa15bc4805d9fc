// Package assistant implements the conversational shopping assistant: a
// query classifier, a price-range extractor, a fuzzy product matcher, and a
// conversational fallback that defers to an external completion service.
package assistant

import (
	"context"
	"log"
	"strings"

	"github.com/avabot/assistant/internal/api"
	"github.com/avabot/assistant/internal/catalog"
	"github.com/avabot/assistant/internal/llm"
)

const (
	// introMessage is the fixed reply for greetings; it never varies with
	// the rest of the query content.
	introMessage = "Hello! I’m Avabot, your shopping assistant here to help with all your shopping needs. Just ask me about products, prices, or anything else!"

	// apologyMessage replaces any completion-service failure. The failure is
	// swallowed and the caller still gets a normal 200 response.
	apologyMessage = "I'm having some trouble answering that right now. Please try again later."

	// Generation parameters for the conversational fallback. Replies are
	// kept short; the temperature matches a chatty but stable register.
	completionMaxTokens   = 50
	completionTemperature = float32(0.7)
)

// ResponseCache is an optional read-through cache for conversational replies.
// A nil cache disables caching entirely.
type ResponseCache interface {
	Check(ctx context.Context, query string) (string, bool)
	Set(ctx context.Context, query, response string)
}

// Service ties the classifier, matcher, and fallback together. It holds no
// per-request state; every query is classified and answered independently.
type Service struct {
	matcher     *Matcher
	completions llm.CompletionClient
	cache       ResponseCache
}

// NewService builds the assistant over an immutable catalog and an injected
// completion client. cache may be nil.
func NewService(products catalog.Catalog, completions llm.CompletionClient, cache ResponseCache) *Service {
	return &Service{
		matcher:     NewMatcher(products),
		completions: completions,
		cache:       cache,
	}
}

// Respond answers a single user query. Shopping-related queries go through
// price extraction and fuzzy matching; everything else takes the
// conversational path. Respond never returns an error: the one failure-prone
// step, the completion call, degrades to a fixed apology.
func (s *Service) Respond(ctx context.Context, query string) *api.ChatResponse {
	lowered := strings.ToLower(query)

	if IsShoppingQuery(lowered) {
		matched := s.matcher.Match(lowered, ExtractPriceRange(query))
		if len(matched) == 0 {
			return &api.ChatResponse{Response: notFoundMessage}
		}
		return &api.ChatResponse{
			Response: FormatProducts(matched),
			Products: matched,
		}
	}

	return &api.ChatResponse{Response: s.converse(ctx, query, lowered)}
}

// converse handles non-shopping queries: greeting check first, then the
// cached completion-service path.
func (s *Service) converse(ctx context.Context, query, lowered string) string {
	if IsGreeting(lowered) {
		return introMessage
	}

	if s.cache != nil {
		if cached, ok := s.cache.Check(ctx, query); ok {
			log.Println("✅ Reply cache HIT")
			return cached
		}
	}

	temperature := completionTemperature
	reply, err := s.completions.Complete(ctx, query, &llm.CompletionConfig{
		MaxTokens:   completionMaxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		log.Printf("⚠️ Completion call failed, replying with apology: %v", err)
		return apologyMessage
	}

	reply = strings.TrimSpace(reply)
	if s.cache != nil {
		s.cache.Set(ctx, query, reply)
	}
	return reply
}
