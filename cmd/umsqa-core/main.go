package main

// @title           UMS QA API
// @version         1.0
// @description     Question-answering API over the UMS knowledge base. Questions are matched against an in-memory vector index built at startup.

// @host      localhost:8000
// @BasePath  /

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/umslabs/umsqa-core/internal/adapters/driven/ai"
	"github.com/umslabs/umsqa-core/internal/adapters/driven/corpus"
	"github.com/umslabs/umsqa-core/internal/adapters/driven/memory"
	redisadapter "github.com/umslabs/umsqa-core/internal/adapters/driven/redis"
	"github.com/umslabs/umsqa-core/internal/adapters/driven/vectorindex"
	httpadapter "github.com/umslabs/umsqa-core/internal/adapters/driving/http"
	"github.com/umslabs/umsqa-core/internal/config"
	"github.com/umslabs/umsqa-core/internal/core/ports/driven"
	"github.com/umslabs/umsqa-core/internal/core/services"
	"github.com/umslabs/umsqa-core/internal/splitter"
)

var version = "dev"

func main() {
	// Load .env file if it exists (for API key)
	_ = godotenv.Load()

	log.Printf("umsqa-core %s starting", version)

	cfg, err := config.Load(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	// ===== Embedding service =====
	embedder, err := ai.NewOpenAIEmbedding(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
	if err != nil {
		log.Fatalf("Failed to create embedding service: %v", err)
	}
	defer embedder.Close()

	// ===== Startup pipeline: corpus -> chunks -> embeddings -> index =====
	index := vectorindex.NewBruteForce()
	indexer := services.NewIndexer(services.IndexerConfig{
		Source:   corpus.NewJSONSource(cfg.CorpusPath),
		Splitter: splitter.New(cfg.ChunkSize, cfg.ChunkOverlap),
		Embedder: embedder,
		Index:    index,
		Logger:   logger,
	})

	result, err := indexer.Build(ctx)
	if err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}
	log.Printf("Vector store ready: %d documents, %d chunks", result.Documents, result.Chunks)

	// ===== Answer cache (Redis if available, otherwise in-process) =====
	var answerCache driven.AnswerCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		answerCache = redisadapter.NewAnswerCache(redisClient, cfg.CacheTTL)
		log.Println("Using Redis answer cache")
	} else {
		answerCache = memory.NewAnswerCache(cfg.CacheTTL)
		log.Println("Using in-process answer cache")
	}

	// ===== Query service =====
	queryService := services.NewQueryService(services.QueryConfig{
		Embedder:       embedder,
		Index:          index,
		Cache:          answerCache,
		TopK:           cfg.TopK,
		EmbedTimeout:   cfg.EmbedTimeout,
		TotalDocuments: result.Documents,
		Logger:         logger,
	})

	// ===== HTTP server =====
	server := httpadapter.NewServer(httpadapter.Config{
		Host:    cfg.Host,
		Port:    cfg.Port,
		Version: version,
		Logger:  logger,
	}, queryService)

	log.Printf("API server starting on %s:%d", cfg.Host, cfg.Port)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
