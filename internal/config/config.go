// Package config loads service configuration from an optional YAML file and
// the process environment. Environment variables win over file values, file
// values win over defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// OpenAI holds embedding provider settings.
type OpenAI struct {
	// APIKey is required; the process refuses to start without it.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the API endpoint (proxies, tests).
	BaseURL string `yaml:"base_url"`

	// Model is the embedding model name.
	Model string `yaml:"model"`
}

// Config holds all service configuration.
type Config struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	CorpusPath string `yaml:"corpus_path"`

	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
	TopK         int `yaml:"top_k"`

	// Durations are configured in seconds (EMBED_TIMEOUT_SEC,
	// CACHE_TTL_SEC).
	EmbedTimeout time.Duration `yaml:"-"`
	CacheTTL     time.Duration `yaml:"-"`

	// RedisURL enables the Redis answer cache when set; empty falls back to
	// the in-process cache.
	RedisURL string `yaml:"redis_url"`

	OpenAI OpenAI `yaml:"openai"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Host:         "0.0.0.0",
		Port:         8000,
		CorpusPath:   "ums_paths.json",
		ChunkSize:    200,
		ChunkOverlap: 20,
		TopK:         3,
		EmbedTimeout: 30 * time.Second,
		CacheTTL:     time.Hour,
		OpenAI: OpenAI{
			Model: "text-embedding-3-small",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if it
// exists) and environment variables, in that order. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// optional file
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides configuration from the process environment.
func (c *Config) applyEnv() {
	c.Host = getEnv("HOST", c.Host)
	c.Port = getEnvInt("PORT", c.Port)
	c.CorpusPath = getEnv("CORPUS_PATH", c.CorpusPath)
	c.ChunkSize = getEnvInt("CHUNK_SIZE", c.ChunkSize)
	c.ChunkOverlap = getEnvInt("CHUNK_OVERLAP", c.ChunkOverlap)
	c.TopK = getEnvInt("TOP_K", c.TopK)
	c.RedisURL = getEnv("REDIS_URL", c.RedisURL)
	c.EmbedTimeout = time.Duration(getEnvInt("EMBED_TIMEOUT_SEC", int(c.EmbedTimeout/time.Second))) * time.Second
	c.CacheTTL = time.Duration(getEnvInt("CACHE_TTL_SEC", int(c.CacheTTL/time.Second))) * time.Second
	c.OpenAI.APIKey = getEnv("OPENAI_API_KEY", c.OpenAI.APIKey)
	c.OpenAI.BaseURL = getEnv("OPENAI_BASE_URL", c.OpenAI.BaseURL)
	c.OpenAI.Model = getEnv("EMBEDDING_MODEL", c.OpenAI.Model)
}

// Validate reports configuration the service cannot start with.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk overlap %d must be smaller than chunk size %d", c.ChunkOverlap, c.ChunkSize)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
