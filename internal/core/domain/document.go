package domain

// Document is a single text entry from the knowledge base corpus. Documents
// are loaded once at startup and never mutated.
type Document struct {
	// Category is the corpus section the document came from (informational
	// only; lookups ignore it).
	Category string

	// Content is the raw text.
	Content string
}

// Chunk is a bounded-length window over a Document, produced by the splitter
// during index construction.
type Chunk struct {
	// ID identifies the chunk within the index ("<doc>:<seq>").
	ID string

	// DocumentIndex is the position of the source document in the flattened
	// corpus.
	DocumentIndex int

	// Seq is the chunk's position among chunks of the same document.
	Seq int

	// Content is the chunk text.
	Content string
}

// IndexEntry pairs a chunk with its embedding vector. The vector index owns
// entries after Build.
type IndexEntry struct {
	Chunk  Chunk
	Vector []float32
}

// Match is a single nearest-neighbour result. Score is cosine similarity,
// higher is closer.
type Match struct {
	Chunk Chunk
	Score float64
}
