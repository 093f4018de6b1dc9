package vectorindex

import (
	"errors"
	"testing"

	"github.com/umslabs/umsqa-core/internal/core/domain"
)

func entry(id string, vec ...float32) domain.IndexEntry {
	return domain.IndexEntry{
		Chunk:  domain.Chunk{ID: id, Content: "chunk " + id},
		Vector: vec,
	}
}

func TestBruteForce_QueryOrdering(t *testing.T) {
	idx := NewBruteForce()
	err := idx.Build([]domain.IndexEntry{
		entry("x", 1, 0),
		entry("y", 0, 1),
		entry("d", 1, 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches, err := idx.Query([]float32{1, 0}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	// Exact direction first, diagonal second, orthogonal last.
	if matches[0].Chunk.ID != "x" {
		t.Errorf("expected nearest chunk 'x', got %q", matches[0].Chunk.ID)
	}
	if matches[1].Chunk.ID != "d" {
		t.Errorf("expected second chunk 'd', got %q", matches[1].Chunk.ID)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not sorted nearest-first at %d", i)
		}
	}
}

func TestBruteForce_QueryLimit(t *testing.T) {
	idx := NewBruteForce()
	_ = idx.Build([]domain.IndexEntry{
		entry("a", 1, 0),
		entry("b", 0.9, 0.1),
		entry("c", 0.8, 0.2),
		entry("d", 0, 1),
	})

	matches, err := idx.Query([]float32{1, 0}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(matches))
	}

	// k larger than the index returns everything.
	matches, _ = idx.Query([]float32{1, 0}, 100)
	if len(matches) != 4 {
		t.Errorf("expected 4 matches, got %d", len(matches))
	}
}

func TestBruteForce_Empty(t *testing.T) {
	idx := NewBruteForce()
	if err := idx.Build(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Len() != 0 {
		t.Errorf("expected empty index, got %d", idx.Len())
	}

	matches, err := idx.Query([]float32{1, 0}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches != nil {
		t.Errorf("expected nil matches from empty index, got %v", matches)
	}
}

func TestBruteForce_DimensionMismatch(t *testing.T) {
	idx := NewBruteForce()

	err := idx.Build([]domain.IndexEntry{
		entry("a", 1, 0),
		entry("b", 1, 0, 0),
	})
	if !errors.Is(err, domain.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch from Build, got %v", err)
	}

	_ = idx.Build([]domain.IndexEntry{entry("a", 1, 0)})
	_, err = idx.Query([]float32{1, 0, 0}, 1)
	if !errors.Is(err, domain.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch from Query, got %v", err)
	}
}

func TestBruteForce_SkipsZeroMagnitude(t *testing.T) {
	idx := NewBruteForce()
	_ = idx.Build([]domain.IndexEntry{
		entry("zero", 0, 0),
		entry("unit", 1, 0),
	})

	matches, err := idx.Query([]float32{1, 0}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Chunk.ID != "unit" {
		t.Errorf("expected only 'unit' to match, got %v", matches)
	}

	// A zero query vector matches nothing.
	matches, err = idx.Query([]float32{0, 0}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches != nil {
		t.Errorf("expected nil matches for zero query, got %v", matches)
	}
}

func TestBruteForce_Deterministic(t *testing.T) {
	idx := NewBruteForce()
	_ = idx.Build([]domain.IndexEntry{
		entry("a", 0.5, 0.5),
		entry("b", 0.7, 0.3),
		entry("c", 0.2, 0.8),
	})

	first, err := idx.Query([]float32{0.6, 0.4}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for n := 0; n < 10; n++ {
		again, err := idx.Query([]float32{0.6, 0.4}, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range first {
			if again[i].Chunk.ID != first[i].Chunk.ID {
				t.Fatalf("run %d: order changed at %d", n, i)
			}
		}
	}
}
