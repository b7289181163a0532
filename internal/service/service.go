// Package service orchestrates the search engine: it owns the currently
// loaded corpus snapshot and the last query's results, and exposes the
// operations the shell drives.
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"docsearch/internal/domain"
	"docsearch/internal/index"
	"docsearch/internal/search"
	"docsearch/internal/stopwords"
	"docsearch/internal/tokenizer"
)

var (
	// ErrNoCorpus means no directory has been loaded successfully yet.
	ErrNoCorpus = errors.New("no corpus loaded")
	// ErrEmptyQuery means every query word was filtered out: none of
	// them belong to the vocabulary.
	ErrEmptyQuery = errors.New("no query words in vocabulary")
	// ErrNoResults means no query has produced results yet.
	ErrNoResults = errors.New("no query results yet")
	// ErrIndexOutOfRange means a result index points outside the last
	// result list.
	ErrIndexOutOfRange = errors.New("result index out of range")
)

// SearchService holds the active corpus and answers queries against it.
// The corpus is an immutable snapshot: Load builds a new one and swaps
// the reference only on success, so a failed reload never disturbs the
// corpus that is already being served.
type SearchService struct {
	stop   stopwords.Set
	scorer *search.Scorer
	log    *logrus.Entry

	mu      sync.RWMutex
	corpus  *index.Corpus
	results []domain.QueryResult
}

// New creates a SearchService with no corpus loaded.
func New(stop stopwords.Set, scorer *search.Scorer, log *logrus.Entry) *SearchService {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &SearchService{stop: stop, scorer: scorer, log: log}
}

// Load indexes every regular file under dir and makes the new corpus the
// active one. On failure the previous corpus (if any) stays active.
func (s *SearchService) Load(dir string) (domain.LoadStats, error) {
	c, err := index.Load(dir, s.stop, s.log)
	if err != nil {
		return domain.LoadStats{}, err
	}

	s.mu.Lock()
	s.corpus = c
	s.results = nil
	s.mu.Unlock()

	return c.Stats(), nil
}

// Query tokenizes raw text, narrows it to vocabulary terms and ranks the
// corpus against it. It returns the narrowed terms alongside the ranked
// results so the shell can echo the effective query. Returns ErrNoCorpus
// before the first successful load and ErrEmptyQuery when narrowing
// leaves nothing to score.
func (s *SearchService) Query(raw string) ([]string, []domain.QueryResult, error) {
	s.mu.RLock()
	c := s.corpus
	s.mu.RUnlock()
	if c == nil {
		return nil, nil, ErrNoCorpus
	}

	terms := c.FilterKnown(tokenizer.Tokenize(raw, s.stop))
	if len(terms) == 0 {
		return nil, nil, ErrEmptyQuery
	}

	results := s.scorer.Score(c, terms)
	if results == nil {
		// A query ran; RESULTS must report an empty list, not "no query yet".
		results = []domain.QueryResult{}
	}
	s.log.WithFields(logrus.Fields{
		"terms":   len(terms),
		"results": len(results),
	}).Debug("query scored")

	s.mu.Lock()
	s.results = results
	s.mu.Unlock()

	return terms, results, nil
}

// Results returns the last query's ranked results, or ErrNoResults if no
// query has been executed since the last load.
func (s *SearchService) Results() ([]domain.QueryResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.results == nil {
		return nil, ErrNoResults
	}
	return s.results, nil
}

// Result returns the i-th entry of the last query's results.
func (s *SearchService) Result(i int) (domain.QueryResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.results == nil {
		return domain.QueryResult{}, ErrNoResults
	}
	if len(s.results) == 0 {
		return domain.QueryResult{}, fmt.Errorf("%w: the last query returned no results", ErrIndexOutOfRange)
	}
	if i < 0 || i >= len(s.results) {
		return domain.QueryResult{}, fmt.Errorf("%w: valid indexes are [0,%d]", ErrIndexOutOfRange, len(s.results)-1)
	}
	return s.results[i], nil
}

// Stats returns the active corpus's load summary, or ErrNoCorpus.
func (s *SearchService) Stats() (domain.LoadStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.corpus == nil {
		return domain.LoadStats{}, ErrNoCorpus
	}
	return s.corpus.Stats(), nil
}
