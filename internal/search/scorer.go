// Package search ranks corpus documents against a query by cosine
// similarity over TF-IDF vectors.
package search

import (
	"math"
	"sort"

	"docsearch/internal/domain"
	"docsearch/internal/index"
)

const (
	// DefaultLimit is the maximum number of results returned.
	DefaultLimit = 10
	// DefaultFloor is the similarity below which a match is discarded
	// as numerically negligible.
	DefaultFloor = 5e-4
)

// Scorer ranks documents by cosine similarity against a query vector.
type Scorer struct {
	limit int
	floor float64
}

// NewScorer creates a Scorer with the given result cap and similarity
// floor. Non-positive values fall back to the defaults.
func NewScorer(limit int, floor float64) *Scorer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if floor <= 0 {
		floor = DefaultFloor
	}
	return &Scorer{limit: limit, floor: floor}
}

// Score builds the query TF-IDF vector from terms and ranks every corpus
// document against it. Results below the floor are dropped, the rest are
// sorted by descending similarity and capped at the configured limit.
// terms must already be narrowed to vocabulary membership.
func (s *Scorer) Score(c *index.Corpus, terms []string) []domain.QueryResult {
	queryVec := c.GenerateVector(terms)
	queryNorm := norm(queryVec)

	var results []domain.QueryResult
	for _, doc := range c.Documents() {
		docVec := c.DocumentVector(doc.Key)
		similarity := cosine(queryVec, queryNorm, docVec)
		if similarity >= s.floor {
			results = append(results, domain.QueryResult{
				Similarity: similarity,
				Path:       doc.Path,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > s.limit {
		results = results[:s.limit]
	}
	return results
}

// cosine computes dot(a,b) / (normA * norm(b)), guarding the zero-norm
// case: a document that tokenized to nothing has norm 0 and scores 0
// instead of NaN.
func cosine(a []float64, normA float64, b []float64) float64 {
	denom := normA * norm(b)
	if denom == 0 {
		return 0
	}
	return dot(a, b) / denom
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
