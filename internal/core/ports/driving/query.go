package driving

import (
	"context"

	"github.com/umslabs/umsqa-core/internal/core/domain"
)

// QueryService answers questions against the indexed corpus.
type QueryService interface {
	// Answer embeds the question, finds the nearest indexed chunks and
	// returns the best match. Returns domain.ErrEmptyQuestion for a blank
	// question and domain.ErrNoAnswer when the index has no matches.
	Answer(ctx context.Context, question string) (*domain.Answer, error)

	// Stats reports index state for health checks.
	Stats() domain.IndexStats
}
