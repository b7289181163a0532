package domain

// Document is a single text file loaded into the corpus. Key is the
// zero-based index assigned in traversal order; Words is the normalized
// token list with duplicates retained (the term-frequency source).
type Document struct {
	Key   int
	Path  string
	Words []string
}

// QueryResult is one ranked match: the cosine similarity of a document
// against the query and the document's path.
type QueryResult struct {
	Similarity float64
	Path       string
}

// LoadStats summarizes a successful corpus load.
type LoadStats struct {
	Documents      int
	VocabularySize int
}
