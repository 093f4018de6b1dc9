package driven

import (
	"context"
)

// AnswerCache memoizes answers for repeated questions. The cache only stores
// the final answer string; it never feeds back into the index.
type AnswerCache interface {
	// Get returns the cached answer for a question, and whether it was found.
	Get(ctx context.Context, question string) (string, bool, error)

	// Set stores an answer for a question.
	Set(ctx context.Context, question string, answer string) error
}
