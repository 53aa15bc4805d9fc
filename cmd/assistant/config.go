package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied when config.yaml leaves a field unset.
const (
	defaultCatalogPath   = "products.json"
	defaultProvider      = "openai"
	defaultOpenAIModel   = "gpt-3.5-turbo"
	defaultGeminiModel   = "gemini-1.5-flash"
	defaultCacheTTLHours = 24
	defaultPort          = "8080"
)

// AppConfig holds all configuration for the assistant, loaded from the
// environment and config.yaml.
type AppConfig struct {
	Port        string
	CatalogPath string
	Provider    string
	Model       string
	APIKey      string
	RedisAddr   string // empty disables the reply cache
	CacheTTL    time.Duration
}

// fileConfig mirrors the structure of config.yaml.
type fileConfig struct {
	Catalog struct {
		Path string `yaml:"path"`
	} `yaml:"catalog"`
	Completion struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
	} `yaml:"completion"`
	Cache struct {
		TTLHours int `yaml:"ttl_hours"`
	} `yaml:"cache"`
}

// LoadConfig loads configuration from a .env file, environment variables,
// and config.yaml. In release mode (GIN_MODE="release") configuration is
// expected directly in the environment and no .env file is read.
func LoadConfig() (*AppConfig, error) {
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	var fc fileConfig
	raw, err := os.ReadFile("config.yaml")
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
		log.Println("WARNING: No config.yaml found, using defaults.")
	} else if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
	}

	cfg := &AppConfig{
		Port:        getEnv("PORT", defaultPort),
		CatalogPath: fc.Catalog.Path,
		Provider:    fc.Completion.Provider,
		Model:       fc.Completion.Model,
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CacheTTL:    time.Duration(fc.Cache.TTLHours) * time.Hour,
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = defaultCatalogPath
	}
	if cfg.Provider == "" {
		cfg.Provider = defaultProvider
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTLHours * time.Hour
	}

	switch cfg.Provider {
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Model == "" {
			cfg.Model = defaultOpenAIModel
		}
	case "gemini":
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.Model == "" {
			cfg.Model = defaultGeminiModel
		}
	default:
		return nil, fmt.Errorf("unknown completion provider %q in config.yaml", cfg.Provider)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key set for completion provider %q", cfg.Provider)
	}

	return cfg, nil
}

// getEnv is a helper to read an env var or return a default.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
