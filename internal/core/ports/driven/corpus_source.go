package driven

import (
	"context"

	"github.com/umslabs/umsqa-core/internal/core/domain"
)

// CorpusSource provides the knowledge base documents at startup.
type CorpusSource interface {
	// Load reads the corpus and returns the documents in source order.
	Load(ctx context.Context) ([]domain.Document, error)
}
