package driven

import (
	"github.com/umslabs/umsqa-core/internal/core/domain"
)

// VectorIndex is an in-memory nearest-neighbour index over embedding vectors.
// It is built exactly once at startup and is read-only afterwards, so Query
// is safe for concurrent use without locking.
type VectorIndex interface {
	// Build constructs the index from all entries in one pass. There is no
	// incremental update operation.
	Build(entries []domain.IndexEntry) error

	// Query returns up to k matches for the vector, nearest first.
	Query(vector []float32, k int) ([]domain.Match, error)

	// Len returns the number of indexed entries.
	Len() int
}
