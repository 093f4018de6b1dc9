package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/umslabs/umsqa-core/internal/core/domain"
	"github.com/umslabs/umsqa-core/internal/core/ports/driven"
	"github.com/umslabs/umsqa-core/internal/splitter"
)

// Indexer runs the startup pipeline: load corpus, split documents, embed
// chunks, build the vector index. It runs exactly once; any failure is fatal
// to the process.
type Indexer struct {
	source   driven.CorpusSource
	splitter *splitter.Splitter
	embedder driven.EmbeddingService
	index    driven.VectorIndex
	logger   *slog.Logger
}

// IndexerConfig holds the Indexer dependencies
type IndexerConfig struct {
	Source   driven.CorpusSource
	Splitter *splitter.Splitter
	Embedder driven.EmbeddingService
	Index    driven.VectorIndex
	Logger   *slog.Logger
}

// BuildResult reports what the pipeline produced.
type BuildResult struct {
	Documents int
	Chunks    int
}

// NewIndexer creates a new Indexer
func NewIndexer(cfg IndexerConfig) *Indexer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Indexer{
		source:   cfg.Source,
		splitter: cfg.Splitter,
		embedder: cfg.Embedder,
		index:    cfg.Index,
		logger:   logger,
	}
}

// Build loads the corpus, chunks every document, embeds the chunks and builds
// the index in one pass. A corpus that yields zero chunks produces a valid
// empty index.
func (ix *Indexer) Build(ctx context.Context) (*BuildResult, error) {
	docs, err := ix.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	ix.logger.Info("corpus loaded", "documents", len(docs))

	var chunks []domain.Chunk
	var texts []string
	for di, doc := range docs {
		for seq, piece := range ix.splitter.Split(doc.Content) {
			chunks = append(chunks, domain.Chunk{
				ID:            fmt.Sprintf("doc%d:%d", di, seq),
				DocumentIndex: di,
				Seq:           seq,
				Content:       piece,
			})
			texts = append(texts, piece)
		}
	}

	if len(chunks) == 0 {
		if err := ix.index.Build(nil); err != nil {
			return nil, fmt.Errorf("building index: %w", err)
		}
		ix.logger.Warn("corpus produced no chunks, index is empty")
		return &BuildResult{Documents: len(docs)}, nil
	}

	vectors, err := ix.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	entries := make([]domain.IndexEntry, len(chunks))
	for i := range chunks {
		entries[i] = domain.IndexEntry{Chunk: chunks[i], Vector: vectors[i]}
	}
	if err := ix.index.Build(entries); err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}

	ix.logger.Info("index built",
		"documents", len(docs),
		"chunks", len(chunks),
		"model", ix.embedder.Model(),
		"dimensions", ix.embedder.Dimensions())

	return &BuildResult{Documents: len(docs), Chunks: len(chunks)}, nil
}
