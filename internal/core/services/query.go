package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/umslabs/umsqa-core/internal/core/domain"
	"github.com/umslabs/umsqa-core/internal/core/ports/driven"
	"github.com/umslabs/umsqa-core/internal/core/ports/driving"
)

// Ensure queryService implements QueryService
var _ driving.QueryService = (*queryService)(nil)

// Defaults for QueryConfig.
const (
	DefaultTopK         = 3
	DefaultEmbedTimeout = 30 * time.Second
)

// QueryConfig holds the query service dependencies and tuning knobs.
type QueryConfig struct {
	Embedder driven.EmbeddingService
	Index    driven.VectorIndex

	// Cache is optional; nil disables answer memoization.
	Cache driven.AnswerCache

	// TopK is how many nearest chunks to retrieve (default 3).
	TopK int

	// EmbedTimeout bounds the external embedding call per request
	// (default 30s).
	EmbedTimeout time.Duration

	// TotalDocuments is the flattened corpus size, reported by Stats.
	TotalDocuments int

	Logger *slog.Logger
}

// queryService implements the QueryService interface
type queryService struct {
	embedder       driven.EmbeddingService
	index          driven.VectorIndex
	cache          driven.AnswerCache
	topK           int
	embedTimeout   time.Duration
	totalDocuments int
	logger         *slog.Logger
}

// NewQueryService creates a new QueryService
func NewQueryService(cfg QueryConfig) driving.QueryService {
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.EmbedTimeout <= 0 {
		cfg.EmbedTimeout = DefaultEmbedTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &queryService{
		embedder:       cfg.Embedder,
		index:          cfg.Index,
		cache:          cfg.Cache,
		topK:           cfg.TopK,
		embedTimeout:   cfg.EmbedTimeout,
		totalDocuments: cfg.TotalDocuments,
		logger:         cfg.Logger,
	}
}

// Answer resolves a question to the text of the nearest indexed chunk.
func (s *queryService) Answer(ctx context.Context, question string) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}

	// Cache errors are never fatal: log and fall through to the index.
	if s.cache != nil {
		answer, ok, err := s.cache.Get(ctx, question)
		if err != nil {
			s.logger.Warn("answer cache read failed", "error", err)
		} else if ok {
			return &domain.Answer{Text: answer, Cached: true}, nil
		}
	}

	embedCtx, cancel := context.WithTimeout(ctx, s.embedTimeout)
	defer cancel()
	vector, err := s.embedder.EmbedQuery(embedCtx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	matches, err := s.index.Query(vector, s.topK)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	if len(matches) == 0 {
		return nil, domain.ErrNoAnswer
	}

	answer := &domain.Answer{
		Text:    matches[0].Chunk.Content,
		Score:   matches[0].Score,
		Matches: matches,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, question, answer.Text); err != nil {
			s.logger.Warn("answer cache write failed", "error", err)
		}
	}
	return answer, nil
}

// Stats reports index state for health checks.
func (s *queryService) Stats() domain.IndexStats {
	return domain.IndexStats{
		TotalDocuments: s.totalDocuments,
		TotalChunks:    s.index.Len(),
		Ready:          true,
	}
}
