package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avabot/assistant/internal/assistant"
	"github.com/avabot/assistant/internal/cache"
	"github.com/avabot/assistant/internal/catalog"
	"github.com/avabot/assistant/internal/llm"
)

// main is the entry point for the application. Its primary role is the
// "Composition Root": it loads configuration, initializes all services,
// injects dependencies, and starts the server.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting Avabot | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	products, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("❌ FATAL: Could not load product catalog: %v", err)
	}
	log.Printf("✅ Catalog loaded with %d products.", len(products))

	completions, err := initializeCompletionClient(cfg)
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}
	log.Printf("✅ Completion client initialized (provider: %s, model: %s).", cfg.Provider, cfg.Model)

	var replyCache assistant.ResponseCache
	if cfg.RedisAddr != "" {
		c, err := cache.New(cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			log.Fatalf("❌ FATAL: %v", err)
		}
		replyCache = c
		log.Println("✅ Reply cache connected.")
	} else {
		log.Println("⚠️ REDIS_ADDR not set, running without a reply cache.")
	}

	service := assistant.NewService(products, completions, replyCache)
	chatHandler := NewChatHandler(service)
	log.Println("✅ All services initialized.")

	// 3. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()
	engine.POST("/chatbot", chatHandler.HandleChat)
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":      buildInfo.Version,
			"catalog_size": len(products),
		})
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// initializeCompletionClient creates the completion client selected by config.
func initializeCompletionClient(cfg *AppConfig) (llm.CompletionClient, error) {
	switch cfg.Provider {
	case "openai":
		return llm.NewOpenAIClient(cfg.APIKey, cfg.Model)
	case "gemini":
		return llm.NewGeminiClient(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("no client for completion provider %q", cfg.Provider)
	}
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Avabot is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}
