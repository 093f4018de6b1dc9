// Package corpus loads the knowledge base from its on-disk JSON form.
package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/umslabs/umsqa-core/internal/core/domain"
	"github.com/umslabs/umsqa-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.CorpusSource = (*JSONSource)(nil)

// RootKey is the top-level object key holding the category map.
const RootKey = "UMS_Chatbot_Paths"

// JSONSource reads documents from a JSON file of the form
// {"UMS_Chatbot_Paths": {"<category>": ["<text>", ...], ...}}.
// Categories and their entries are returned in file order.
type JSONSource struct {
	path string
}

// NewJSONSource creates a JSONSource for the given file path.
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

// Load reads and parses the corpus file.
func (s *JSONSource) Load(ctx context.Context) ([]domain.Document, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCorpusNotFound, s.path)
		}
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a corpus document from r. Decoding walks the token stream
// instead of unmarshalling into a map, so document order matches the file.
func Parse(r io.Reader) ([]domain.Document, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var docs []domain.Document
	found := false
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		if key != RootKey {
			// Skip unrelated top-level values.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, invalid(err)
			}
			continue
		}
		found = true
		docs, err = parseCategories(dec)
		if err != nil {
			return nil, err
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, invalid(err)
	}
	if !found {
		return nil, fmt.Errorf("%w: missing %q key", domain.ErrInvalidCorpus, RootKey)
	}
	return docs, nil
}

// parseCategories reads the category object: category name mapped to an
// array of document strings.
func parseCategories(dec *json.Decoder) ([]domain.Document, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var docs []domain.Document
	for dec.More() {
		category, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '['); err != nil {
			return nil, err
		}
		for dec.More() {
			content, err := stringToken(dec)
			if err != nil {
				return nil, err
			}
			docs = append(docs, domain.Document{
				Category: category,
				Content:  content,
			})
		}
		if err := expectDelim(dec, ']'); err != nil {
			return nil, err
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return docs, nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", invalid(err)
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string, got %v", domain.ErrInvalidCorpus, tok)
	}
	return s, nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return invalid(err)
	}
	d, ok := tok.(json.Delim)
	if !ok || rune(d) != want {
		return fmt.Errorf("%w: expected %q, got %v", domain.ErrInvalidCorpus, want, tok)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrInvalidCorpus, err)
}
