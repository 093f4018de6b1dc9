package mocks

import (
	"errors"
	"math"
	"sort"

	"github.com/umslabs/umsqa-core/internal/core/domain"
)

// MockVectorIndex is an in-memory mock of VectorIndex for testing
type MockVectorIndex struct {
	entries  []domain.IndexEntry
	failNext bool

	// QueryCalls counts Query invocations
	QueryCalls int
}

// NewMockVectorIndex creates a new MockVectorIndex
func NewMockVectorIndex() *MockVectorIndex {
	return &MockVectorIndex{}
}

func (m *MockVectorIndex) Build(entries []domain.IndexEntry) error {
	if m.failNext {
		m.failNext = false
		return errors.New("build failed")
	}
	m.entries = append([]domain.IndexEntry(nil), entries...)
	return nil
}

func (m *MockVectorIndex) Query(vector []float32, k int) ([]domain.Match, error) {
	m.QueryCalls++
	if m.failNext {
		m.failNext = false
		return nil, errors.New("query failed")
	}

	matches := make([]domain.Match, 0, len(m.entries))
	for _, e := range m.entries {
		matches = append(matches, domain.Match{
			Chunk: e.Chunk,
			Score: cosine(vector, e.Vector),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if k > 0 && k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

func (m *MockVectorIndex) Len() int {
	return len(m.entries)
}

// Helper methods for testing

func (m *MockVectorIndex) SetFailNext(fail bool) {
	m.failNext = fail
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
