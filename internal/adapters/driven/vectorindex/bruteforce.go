// Package vectorindex provides the in-memory nearest-neighbour index.
package vectorindex

import (
	"fmt"
	"math"
	"sort"

	"github.com/umslabs/umsqa-core/internal/core/domain"
	"github.com/umslabs/umsqa-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.VectorIndex = (*BruteForce)(nil)

// BruteForce is an exact cosine-similarity index: Query scans every entry.
// Build precomputes vector magnitudes so a query costs one dot product per
// entry. The index is immutable after Build and safe for concurrent readers.
type BruteForce struct {
	chunks []domain.Chunk
	vecs   [][]float32
	mags   []float64
	dim    int
}

// NewBruteForce creates an empty BruteForce index.
func NewBruteForce() *BruteForce {
	return &BruteForce{}
}

// Build loads all entries and precomputes magnitudes. All vectors must share
// one dimension.
func (i *BruteForce) Build(entries []domain.IndexEntry) error {
	if len(entries) == 0 {
		i.chunks, i.vecs, i.mags, i.dim = nil, nil, nil, 0
		return nil
	}

	dim := len(entries[0].Vector)
	for _, e := range entries {
		if len(e.Vector) != dim {
			return fmt.Errorf("%w: %d vs %d", domain.ErrDimensionMismatch, len(e.Vector), dim)
		}
	}

	chunks := make([]domain.Chunk, len(entries))
	vecs := make([][]float32, len(entries))
	mags := make([]float64, len(entries))
	for j, e := range entries {
		chunks[j] = e.Chunk
		vecs[j] = append([]float32(nil), e.Vector...)
		mags[j] = magnitude(e.Vector)
	}

	i.chunks = chunks
	i.vecs = vecs
	i.mags = mags
	i.dim = dim
	return nil
}

// Query returns up to k entries nearest to the vector by cosine similarity,
// nearest first. Zero-magnitude entries and NaN scores are skipped.
func (i *BruteForce) Query(vector []float32, k int) ([]domain.Match, error) {
	if i.dim == 0 || len(i.vecs) == 0 {
		return nil, nil
	}
	if len(vector) != i.dim {
		return nil, fmt.Errorf("%w: query dim %d, index dim %d", domain.ErrDimensionMismatch, len(vector), i.dim)
	}
	qm := magnitude(vector)
	if qm == 0 {
		return nil, nil
	}

	type scored struct {
		idx   int
		score float64
	}
	scoreds := make([]scored, 0, len(i.vecs))
	for j := range i.vecs {
		if i.mags[j] == 0 {
			continue
		}
		s := dot(vector, i.vecs[j]) / (qm * i.mags[j])
		if math.IsNaN(s) {
			continue
		}
		scoreds = append(scoreds, scored{idx: j, score: s})
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].score > scoreds[b].score })

	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	matches := make([]domain.Match, k)
	for n := 0; n < k; n++ {
		matches[n] = domain.Match{
			Chunk: i.chunks[scoreds[n].idx],
			Score: scoreds[n].score,
		}
	}
	return matches, nil
}

// Len returns the number of indexed entries.
func (i *BruteForce) Len() int {
	return len(i.vecs)
}

func dot(a, b []float32) float64 {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return s
}

func magnitude(v []float32) float64 { return math.Sqrt(dot(v, v)) }
