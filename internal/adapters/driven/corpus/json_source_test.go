package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/umslabs/umsqa-core/internal/core/domain"
)

const sampleCorpus = `{
  "UMS_Chatbot_Paths": {
    "Accounts": [
      "How do I reset my password?",
      "Visit the accounts office to update your email address."
    ],
    "Library": [
      "The library is open from 8am to 10pm on weekdays."
    ],
    "Fees": []
  }
}`

func TestParse(t *testing.T) {
	docs, err := Parse(strings.NewReader(sampleCorpus))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}

	// Order follows the file: both across categories and within each array.
	want := []struct {
		category string
		content  string
	}{
		{"Accounts", "How do I reset my password?"},
		{"Accounts", "Visit the accounts office to update your email address."},
		{"Library", "The library is open from 8am to 10pm on weekdays."},
	}
	for i, w := range want {
		if docs[i].Category != w.category {
			t.Errorf("doc %d: expected category %q, got %q", i, w.category, docs[i].Category)
		}
		if docs[i].Content != w.content {
			t.Errorf("doc %d: expected content %q, got %q", i, w.content, docs[i].Content)
		}
	}
}

func TestParse_IgnoresOtherTopLevelKeys(t *testing.T) {
	input := `{
  "version": 2,
  "metadata": {"generated": "2024-01-01"},
  "UMS_Chatbot_Paths": {"General": ["Campus map is at the main gate."]}
}`

	docs, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
}

func TestParse_MissingRootKey(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"Other": {}}`))
	if !errors.Is(err, domain.ErrInvalidCorpus) {
		t.Errorf("expected ErrInvalidCorpus, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"truncated", `{"UMS_Chatbot_Paths": {"A": ["x"`},
		{"not json", `hello world`},
		{"top-level array", `["a", "b"]`},
		{"non-string entry", `{"UMS_Chatbot_Paths": {"A": [42]}}`},
		{"non-array category", `{"UMS_Chatbot_Paths": {"A": "x"}}`},
		{"empty input", ``},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if !errors.Is(err, domain.ErrInvalidCorpus) {
				t.Errorf("expected ErrInvalidCorpus, got %v", err)
			}
		})
	}
}

func TestParse_EmptyCategories(t *testing.T) {
	docs, err := Parse(strings.NewReader(`{"UMS_Chatbot_Paths": {}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected 0 documents, got %d", len(docs))
	}
}

func TestJSONSource_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ums_paths.json")
	if err := os.WriteFile(path, []byte(sampleCorpus), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	src := NewJSONSource(path)
	docs, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 3 {
		t.Errorf("expected 3 documents, got %d", len(docs))
	}
}

func TestJSONSource_Load_NotFound(t *testing.T) {
	src := NewJSONSource(filepath.Join(t.TempDir(), "missing.json"))

	_, err := src.Load(context.Background())
	if !errors.Is(err, domain.ErrCorpusNotFound) {
		t.Errorf("expected ErrCorpusNotFound, got %v", err)
	}
}
