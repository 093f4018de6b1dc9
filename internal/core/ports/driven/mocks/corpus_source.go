package mocks

import (
	"context"
	"errors"

	"github.com/umslabs/umsqa-core/internal/core/domain"
)

// MockCorpusSource is a mock implementation of CorpusSource for testing
type MockCorpusSource struct {
	documents []domain.Document
	failNext  bool
}

// NewMockCorpusSource creates a new MockCorpusSource
func NewMockCorpusSource(docs ...domain.Document) *MockCorpusSource {
	return &MockCorpusSource{documents: docs}
}

func (m *MockCorpusSource) Load(ctx context.Context) ([]domain.Document, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("load failed")
	}
	return append([]domain.Document(nil), m.documents...), nil
}

// Helper methods for testing

func (m *MockCorpusSource) SetFailNext(fail bool) {
	m.failNext = fail
}
