// Package splitter implements recursive character text splitting: text is cut
// at the coarsest natural boundary available (paragraph, line, sentence,
// word), narrowing the separator set until every piece fits the size bound,
// with a configurable overlap carried between consecutive chunks.
package splitter

import (
	"strings"
	"unicode/utf8"
)

// Default splitting parameters.
const (
	DefaultChunkSize    = 200
	DefaultChunkOverlap = 20
)

// defaultSeparators is the boundary ladder, coarsest first. The empty string
// is the hard per-character cut and always terminates the recursion.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// Splitter splits text into overlapping chunks of bounded length. Lengths are
// measured in runes.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

// New creates a Splitter with the given chunk size and overlap. Non-positive
// sizes fall back to the defaults; the overlap is clamped below the size.
func New(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 2
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   defaultSeparators,
	}
}

// ChunkSize returns the configured maximum chunk length.
func (s *Splitter) ChunkSize() int { return s.chunkSize }

// ChunkOverlap returns the configured overlap length.
func (s *Splitter) ChunkOverlap() int { return s.chunkOverlap }

// Split splits text into chunks. Empty or whitespace-only text yields no
// chunks. Text already within the size bound is returned as a single chunk.
func (s *Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= s.chunkSize {
		return []string{text}
	}
	return s.split(text, s.separators)
}

// split recursively cuts text using the first separator from the ladder that
// occurs in it. Pieces that fit are greedily merged back up to the size
// bound; oversized pieces recurse with the remaining, finer separators.
func (s *Splitter) split(text string, separators []string) []string {
	sep := separators[len(separators)-1]
	var rest []string
	for i, candidate := range separators {
		if candidate == "" {
			sep = ""
			rest = nil
			break
		}
		if strings.Contains(text, candidate) {
			sep = candidate
			rest = separators[i+1:]
			break
		}
	}

	var pieces []string
	if sep == "" {
		pieces = splitRunes(text)
	} else {
		for _, p := range strings.Split(text, sep) {
			if p != "" {
				pieces = append(pieces, p)
			}
		}
	}

	var chunks []string
	var fitting []string
	for _, piece := range pieces {
		if utf8.RuneCountInString(piece) <= s.chunkSize {
			fitting = append(fitting, piece)
			continue
		}
		if len(fitting) > 0 {
			chunks = append(chunks, s.merge(fitting, sep)...)
			fitting = nil
		}
		if len(rest) == 0 {
			chunks = append(chunks, piece)
		} else {
			chunks = append(chunks, s.split(piece, rest)...)
		}
	}
	if len(fitting) > 0 {
		chunks = append(chunks, s.merge(fitting, sep)...)
	}
	return chunks
}

// merge joins consecutive pieces into chunks no longer than chunkSize. When a
// chunk is emitted, trailing pieces totalling at most chunkOverlap are kept
// to seed the next chunk.
func (s *Splitter) merge(pieces []string, sep string) []string {
	sepLen := utf8.RuneCountInString(sep)
	var chunks []string
	var current []string
	total := 0

	for _, piece := range pieces {
		pl := utf8.RuneCountInString(piece)
		extra := 0
		if len(current) > 0 {
			extra = sepLen
		}
		if total+pl+extra > s.chunkSize && len(current) > 0 {
			if chunk := joinPieces(current, sep); chunk != "" {
				chunks = append(chunks, chunk)
			}
			// Drop leading pieces until what remains fits the overlap
			// budget and leaves room for the incoming piece.
			for len(current) > 0 &&
				(total > s.chunkOverlap || total+pl+sepLen > s.chunkSize) {
				head := utf8.RuneCountInString(current[0])
				if len(current) > 1 {
					head += sepLen
				}
				total -= head
				current = current[1:]
			}
		}
		current = append(current, piece)
		total += pl
		if len(current) > 1 {
			total += sepLen
		}
	}

	if chunk := joinPieces(current, sep); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func joinPieces(pieces []string, sep string) string {
	return strings.TrimSpace(strings.Join(pieces, sep))
}

func splitRunes(text string) []string {
	out := make([]string, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}
