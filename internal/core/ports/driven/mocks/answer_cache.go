package mocks

import (
	"context"
	"errors"
)

// MockAnswerCache is an in-memory mock of AnswerCache for testing
type MockAnswerCache struct {
	answers  map[string]string
	failNext bool

	// GetCalls and SetCalls count invocations
	GetCalls int
	SetCalls int
}

// NewMockAnswerCache creates a new MockAnswerCache
func NewMockAnswerCache() *MockAnswerCache {
	return &MockAnswerCache{answers: make(map[string]string)}
}

func (m *MockAnswerCache) Get(ctx context.Context, question string) (string, bool, error) {
	m.GetCalls++
	if m.failNext {
		m.failNext = false
		return "", false, errors.New("cache unavailable")
	}
	answer, ok := m.answers[question]
	return answer, ok, nil
}

func (m *MockAnswerCache) Set(ctx context.Context, question string, answer string) error {
	m.SetCalls++
	if m.failNext {
		m.failNext = false
		return errors.New("cache unavailable")
	}
	m.answers[question] = answer
	return nil
}

// Helper methods for testing

func (m *MockAnswerCache) SetFailNext(fail bool) {
	m.failNext = fail
}
