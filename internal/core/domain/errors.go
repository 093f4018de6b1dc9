package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrEmptyQuestion indicates the query had no question text
	ErrEmptyQuestion = errors.New("empty question")

	// ErrNoAnswer indicates the index returned no matches
	ErrNoAnswer = errors.New("no answer found")

	// ErrCorpusNotFound indicates the corpus file does not exist
	ErrCorpusNotFound = errors.New("corpus not found")

	// ErrInvalidCorpus indicates the corpus file is malformed or missing the
	// expected top-level key
	ErrInvalidCorpus = errors.New("invalid corpus")

	// ErrIndexNotReady indicates a query arrived before the index was built
	ErrIndexNotReady = errors.New("index not ready")

	// ErrDimensionMismatch indicates a vector's dimension does not match the
	// index dimension
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrServiceUnavailable indicates the embedding service could not be reached
	ErrServiceUnavailable = errors.New("service unavailable")
)
