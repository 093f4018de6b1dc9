package domain

// Answer is the result of a query: the text of the nearest indexed chunk,
// its similarity score, and the surrounding top-k matches.
type Answer struct {
	Text    string
	Score   float64
	Matches []Match

	// Cached reports whether the answer was served from the answer cache
	// without touching the embedder or the index.
	Cached bool
}

// IndexStats describes the state of the in-memory index for health reporting.
type IndexStats struct {
	TotalDocuments int
	TotalChunks    int
	Ready          bool
}
